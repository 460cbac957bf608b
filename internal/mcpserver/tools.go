package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names exposed to MCP clients.
const (
	ToolSearchStructures    = "search_structures"
	ToolGetStructureDetails = "get_structure_details"
	ToolGetLigands          = "get_ligands"
	ToolGetBindingSites     = "get_binding_sites"
	ToolGetUniprotComments  = "get_uniprot_comments"
)

func (srv *MCPServer) registerTools() {
	srv.mcp.AddTool(mcp.NewTool(ToolSearchStructures,
		mcp.WithDescription("Search the Protein Data Bank by free text. Returns PDB IDs with relevance scores; the top hits include structure titles."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query, e.g. a protein name or keyword (2-200 characters)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of hits to return (default 10, max 25)"),
		),
	), srv.handleSearchStructures)

	srv.mcp.AddTool(mcp.NewTool(ToolGetStructureDetails,
		mcp.WithDescription("Get the full record for one PDB entry: title, method, resolution, citation, polymer entities and bound ligands."),
		mcp.WithString("pdb_id",
			mcp.Required(),
			mcp.Description("4-character PDB entry ID, e.g. 6LU7"),
		),
	), srv.handleGetStructureDetails)

	srv.mcp.AddTool(mcp.NewTool(ToolGetLigands,
		mcp.WithDescription("List the non-polymer chemical components (ligands) bound in one PDB entry."),
		mcp.WithString("pdb_id",
			mcp.Required(),
			mcp.Description("4-character PDB entry ID, e.g. 4HHB"),
		),
	), srv.handleGetLigands)

	srv.mcp.AddTool(mcp.NewTool(ToolGetBindingSites,
		mcp.WithDescription("List ligand binding sites for one PDB entry, including curated active-site notes where available."),
		mcp.WithString("pdb_id",
			mcp.Required(),
			mcp.Description("4-character PDB entry ID, e.g. 6LU7"),
		),
	), srv.handleGetBindingSites)

	srv.mcp.AddTool(mcp.NewTool(ToolGetUniprotComments,
		mcp.WithDescription("Get functional annotations (function, catalytic activity, subunit, pathway) for one UniProtKB accession."),
		mcp.WithString("accession",
			mcp.Required(),
			mcp.Description("UniProtKB accession, e.g. P0DTD1"),
		),
	), srv.handleGetUniprotComments)
}
