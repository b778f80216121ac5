package tools

import (
	"github.com/mysql-schema-mcp/mcp/internal/catalog"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Catalog catalog.Service
	Log     *logger.Service
}
