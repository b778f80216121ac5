package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
	"github.com/mysql-schema-mcp/mcp/internal/tools/metadata"
)

// RegisterTools registers all MCP tools on the server. Every tool is
// read-only, so there is no filtering by mode.
func (s *SchemaMCPServer) RegisterTools() error {
	deps := &tools.ToolDependencies{
		Catalog: s.catalog,
		Log:     s.log,
	}

	all := getAllTools(deps)
	for i := range all {
		all[i].Handler = withCallLogging(s.log, all[i].Handler)
	}

	s.MCPServer.AddTools(all...)
	return nil
}

// getAllTools returns all available tools with their specs and handlers
func getAllTools(deps *tools.ToolDependencies) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    metadata.ListDatabasesSpec(),
			Handler: metadata.ListDatabasesHandler(deps),
		},
		{
			Tool:    metadata.ListTablesSpec(),
			Handler: metadata.ListTablesHandler(deps),
		},
		{
			Tool:    metadata.GetTableSchemaSpec(),
			Handler: metadata.GetTableSchemaHandler(deps),
		},
		{
			Tool:    metadata.GetIndexesSpec(),
			Handler: metadata.GetIndexesHandler(deps),
		},
		{
			Tool:    metadata.GetForeignKeysSpec(),
			Handler: metadata.GetForeignKeysHandler(deps),
		},
	}
}
