package mcpserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pdb-srv/internal/annotation"
	"pdb-srv/internal/entry"
	"pdb-srv/internal/model"
	"pdb-srv/internal/search"
	"pdb-srv/pkg/log"

	"github.com/mark3labs/mcp-go/mcp"
)

type fakeEntryUC struct {
	details    entry.GetDetailsOutput
	detailsErr error
	ligands    entry.GetLigandsOutput
	ligandsErr error
}

func (f *fakeEntryUC) GetDetails(_ context.Context, _ entry.GetDetailsInput) (entry.GetDetailsOutput, error) {
	return f.details, f.detailsErr
}

func (f *fakeEntryUC) GetLigands(_ context.Context, _ entry.GetLigandsInput) (entry.GetLigandsOutput, error) {
	return f.ligands, f.ligandsErr
}

func (f *fakeEntryUC) GetPolymerEntities(_ context.Context, _ entry.GetPolymerEntitiesInput) (entry.GetPolymerEntitiesOutput, error) {
	return entry.GetPolymerEntitiesOutput{}, nil
}

type fakeSearchUC struct {
	output search.SearchOutput
	err    error
}

func (f *fakeSearchUC) Search(_ context.Context, _ search.SearchInput) (search.SearchOutput, error) {
	return f.output, f.err
}

type fakeAnnotationUC struct {
	sites    annotation.GetBindingSitesOutput
	sitesErr error
	comments annotation.GetUniprotCommentsOutput
	commErr  error
}

func (f *fakeAnnotationUC) GetBindingSites(_ context.Context, _ annotation.GetBindingSitesInput) (annotation.GetBindingSitesOutput, error) {
	return f.sites, f.sitesErr
}

func (f *fakeAnnotationUC) GetUniprotComments(_ context.Context, _ annotation.GetUniprotCommentsInput) (annotation.GetUniprotCommentsOutput, error) {
	return f.comments, f.commErr
}

func newTestServer(t *testing.T, entryUC entry.UseCase, searchUC search.UseCase, annotationUC annotation.UseCase) *MCPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Name:         "pdb-srv-test",
		Version:      "0.0.0",
		EntryUC:      entryUC,
		SearchUC:     searchUC,
		AnnotationUC: annotationUC,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestHandleSearchStructures(t *testing.T) {
	ctx := context.Background()

	t.Run("renders hits", func(t *testing.T) {
		srv := newTestServer(t,
			&fakeEntryUC{},
			&fakeSearchUC{output: search.SearchOutput{
				Hits:       []model.SearchHit{{Identifier: "6LU7", Score: 1.0, Title: "Main protease"}},
				TotalCount: 1,
			}},
			&fakeAnnotationUC{},
		)

		result, err := srv.handleSearchStructures(ctx, callReq(map[string]any{"query": "protease"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "6LU7") || !strings.Contains(text, "Main protease") {
			t.Errorf("unexpected text:\n%s", text)
		}
	})

	t.Run("missing query is a tool error", func(t *testing.T) {
		srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{}, &fakeAnnotationUC{})

		result, err := srv.handleSearchStructures(ctx, callReq(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result")
		}
	})

	t.Run("usecase failure renders failure text", func(t *testing.T) {
		srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{err: errors.New("boom")}, &fakeAnnotationUC{})

		result, err := srv.handleSearchStructures(ctx, callReq(map[string]any{"query": "protease"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "Failed to search structures") {
			t.Errorf("unexpected text: %q", resultText(t, result))
		}
	})
}

func TestHandleGetStructureDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("renders summary", func(t *testing.T) {
		srv := newTestServer(t,
			&fakeEntryUC{details: entry.GetDetailsOutput{
				Entry: model.EntryMetadata{
					RcsbID: "4HHB",
					Struct: model.EntryStruct{Title: "Human deoxyhaemoglobin"},
				},
			}},
			&fakeSearchUC{}, &fakeAnnotationUC{},
		)

		result, err := srv.handleGetStructureDetails(ctx, callReq(map[string]any{"pdb_id": "4hhb"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "4HHB") || !strings.Contains(text, "Human deoxyhaemoglobin") {
			t.Errorf("unexpected text:\n%s", text)
		}
	})

	t.Run("invalid ID is a tool error", func(t *testing.T) {
		srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{}, &fakeAnnotationUC{})

		result, err := srv.handleGetStructureDetails(ctx, callReq(map[string]any{"pdb_id": "not-an-id"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result")
		}
	})

	t.Run("not found renders failure text", func(t *testing.T) {
		srv := newTestServer(t,
			&fakeEntryUC{detailsErr: entry.ErrEntryNotFound},
			&fakeSearchUC{}, &fakeAnnotationUC{},
		)

		result, err := srv.handleGetStructureDetails(ctx, callReq(map[string]any{"pdb_id": "9ZZZ"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "Failed to retrieve data for PDB entry 9ZZZ") {
			t.Errorf("unexpected text: %q", resultText(t, result))
		}
	})
}

func TestHandleGetBindingSites(t *testing.T) {
	ctx := context.Background()

	srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{},
		&fakeAnnotationUC{sites: annotation.GetBindingSitesOutput{
			Sites: []model.BindingSite{{Label: "Catalytic dyad", Source: model.BindingSiteSourceCurated}},
		}},
	)

	result, err := srv.handleGetBindingSites(ctx, callReq(map[string]any{"pdb_id": "6LU7"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Catalytic dyad") || !strings.Contains(text, "curated") {
		t.Errorf("unexpected text:\n%s", text)
	}
}

func TestHandleGetUniprotComments(t *testing.T) {
	ctx := context.Background()

	t.Run("renders sections", func(t *testing.T) {
		srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{},
			&fakeAnnotationUC{comments: annotation.GetUniprotCommentsOutput{
				Comments: model.UniprotComments{
					Accession: "P0DTD1",
					Function:  []string{"Cleaves the polyprotein."},
				},
			}},
		)

		result, err := srv.handleGetUniprotComments(ctx, callReq(map[string]any{"accession": "p0dtd1"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "P0DTD1") {
			t.Errorf("unexpected text: %q", resultText(t, result))
		}
	})

	t.Run("invalid accession is a tool error", func(t *testing.T) {
		srv := newTestServer(t, &fakeEntryUC{}, &fakeSearchUC{}, &fakeAnnotationUC{})

		result, err := srv.handleGetUniprotComments(ctx, callReq(map[string]any{"accession": "???"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error result")
		}
	})
}
