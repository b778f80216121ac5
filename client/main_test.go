package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingServerBinary(t *testing.T) {
	program := filepath.Join(t.TempDir(), "mysql-schema-mcp")

	err := run(context.Background(), program, nil, "list_databases", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn "+program)
}
