package metadata_test

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mysql-schema-mcp/mcp/internal/catalog/mocks"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func newDeps(t *testing.T) (*tools.ToolDependencies, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockCatalog := mocks.NewMockService(ctrl)
	return &tools.ToolDependencies{Catalog: mockCatalog, Log: logger.Discard()}, mockCatalog
}

func callRequest(args any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}
