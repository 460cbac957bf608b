package mcpserver

import (
	"context"
	"fmt"

	"pdb-srv/internal/annotation"
	"pdb-srv/internal/entry"
	"pdb-srv/internal/render"
	"pdb-srv/internal/search"
	"pdb-srv/pkg/util"

	"github.com/mark3labs/mcp-go/mcp"
)

func (srv *MCPServer) handleSearchStructures(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", 0)

	output, err := srv.searchUC.Search(ctx, search.SearchInput{Query: query, Limit: limit})
	if err != nil {
		srv.l.Errorf(ctx, "mcpserver.handleSearchStructures: search failed: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Failed to search structures for %q.", query)), nil
	}

	return mcp.NewToolResultText(render.SearchResults(query, output.Hits, output.TotalCount)), nil
}

func (srv *MCPServer) handleGetStructureDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pdbID, err := srv.pdbIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output, err := srv.entryUC.GetDetails(ctx, entry.GetDetailsInput{EntryID: pdbID})
	if err != nil {
		srv.l.Errorf(ctx, "mcpserver.handleGetStructureDetails: lookup failed: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Failed to retrieve data for PDB entry %s.", pdbID)), nil
	}

	return mcp.NewToolResultText(render.StructureSummary(output.Entry, output.PolymerEntities, output.Ligands)), nil
}

func (srv *MCPServer) handleGetLigands(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pdbID, err := srv.pdbIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output, err := srv.entryUC.GetLigands(ctx, entry.GetLigandsInput{EntryID: pdbID})
	if err != nil {
		srv.l.Errorf(ctx, "mcpserver.handleGetLigands: lookup failed: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Failed to retrieve ligands for PDB entry %s.", pdbID)), nil
	}

	return mcp.NewToolResultText(render.LigandTable(output.Ligands)), nil
}

func (srv *MCPServer) handleGetBindingSites(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pdbID, err := srv.pdbIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output, err := srv.annotationUC.GetBindingSites(ctx, annotation.GetBindingSitesInput{EntryID: pdbID})
	if err != nil {
		srv.l.Errorf(ctx, "mcpserver.handleGetBindingSites: lookup failed: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Failed to retrieve binding sites for PDB entry %s.", pdbID)), nil
	}

	return mcp.NewToolResultText(render.BindingSiteList(pdbID, output.Sites)), nil
}

func (srv *MCPServer) handleGetUniprotComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("accession")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	accession := util.NormalizeAccession(raw)
	if err := util.IsAccession(accession); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid UniProt accession: %q", raw)), nil
	}

	output, err := srv.annotationUC.GetUniprotComments(ctx, annotation.GetUniprotCommentsInput{Accession: accession})
	if err != nil {
		srv.l.Errorf(ctx, "mcpserver.handleGetUniprotComments: lookup failed: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("Failed to retrieve annotations for accession %s.", accession)), nil
	}

	return mcp.NewToolResultText(render.UniprotCommentsText(output.Comments)), nil
}

func (srv *MCPServer) pdbIDArg(req mcp.CallToolRequest) (string, error) {
	raw, err := req.RequireString("pdb_id")
	if err != nil {
		return "", err
	}
	pdbID := util.NormalizePDBID(raw)
	if err := util.IsPDBID(pdbID); err != nil {
		return "", fmt.Errorf("invalid PDB ID: %q", raw)
	}
	return pdbID, nil
}
