package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mysql-schema-mcp/mcp/internal/catalog/mocks"
	"github.com/mysql-schema-mcp/mcp/internal/config"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
	"github.com/mysql-schema-mcp/mcp/internal/server"
)

func TestToolRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCatalog := mocks.NewMockService(ctrl)

	s := server.NewSchemaMCPServer("test-version", config.Default(), mockCatalog, nil, logger.Discard())
	require.NoError(t, s.RegisterTools())

	registered := s.MCPServer.ListTools()
	// update this list when a tool is added or removed.
	expected := []string{"list_databases", "list_tables", "get_table_schema", "get_indexes", "get_foreign_keys"}
	assert.Len(t, registered, len(expected))

	for _, name := range expected {
		tool, ok := registered[name]
		if !assert.True(t, ok, "tool %s not registered", name) {
			continue
		}
		require.NotNil(t, tool.Tool.Annotations.ReadOnlyHint)
		assert.True(t, *tool.Tool.Annotations.ReadOnlyHint, "tool %s must be read-only", name)
	}
}
