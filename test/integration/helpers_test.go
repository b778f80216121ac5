//go:build integration

package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mysql-schema-mcp/mcp/internal/catalog"
	"github.com/mysql-schema-mcp/mcp/internal/database"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

// newCatalog connects a catalog service to the test server and closes it on cleanup.
func newCatalog(t *testing.T) (catalog.Service, *database.MySQLService) {
	t.Helper()
	svc, err := database.NewMySQLService(testConfig(), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return catalog.NewService(svc, logger.Discard()), svc
}

func indexNames(indexes []catalog.IndexInfo) []string {
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		names = append(names, idx.Name)
	}
	return names
}

// indexOfKey returns the offset of a top-level JSON object key in text.
func indexOfKey(text, key string) int {
	return strings.Index(text, `"`+key+`": {`)
}
