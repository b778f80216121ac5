package server

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

func TestWithCallLogging(t *testing.T) {
	request := mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "list_tables"}}

	t.Run("passes result through", func(t *testing.T) {
		var buf bytes.Buffer
		want := mcp.NewToolResultText("[]")
		handler := withCallLogging(logger.New("debug", "json", &buf), func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return want, nil
		})

		got, err := handler(context.Background(), request)
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Contains(t, buf.String(), `"tool":"list_tables"`)
		assert.Contains(t, buf.String(), `"call_id"`)
		assert.Contains(t, buf.String(), "Tool call finished")
	})

	t.Run("logs tool error results", func(t *testing.T) {
		var buf bytes.Buffer
		handler := withCallLogging(logger.New("info", "json", &buf), func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultError("boom"), nil
		})

		got, err := handler(context.Background(), request)
		require.NoError(t, err)
		assert.True(t, got.IsError)
		assert.Contains(t, buf.String(), "Tool call returned an error result")
	})

	t.Run("logs go errors", func(t *testing.T) {
		var buf bytes.Buffer
		handler := withCallLogging(logger.New("info", "json", &buf), func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return nil, errors.New("handler blew up")
		})

		_, err := handler(context.Background(), request)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "handler blew up")
	})
}
