package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/mysql-schema-mcp/mcp/internal/database"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	connErr := database.NewConnectivityError("failed to connect", cause)
	assert.True(t, database.IsConnectivityError(connErr))
	assert.False(t, database.IsQueryError(connErr))
	assert.ErrorIs(t, connErr, cause)
	assert.Equal(t, "connectivity error: failed to connect: dial tcp: connection refused", connErr.Error())

	queryErr := database.NewQueryError("failed to execute query", nil)
	assert.True(t, database.IsQueryError(queryErr))
	assert.False(t, database.IsConnectivityError(queryErr))
	assert.Equal(t, "query error: failed to execute query", queryErr.Error())
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("list tables: %w", database.NewQueryError("boom", nil))
	assert.True(t, database.IsQueryError(wrapped))

	assert.False(t, database.IsQueryError(nil))
	assert.False(t, database.IsConnectivityError(errors.New("plain")))
}

func TestErrorMessageDetails(t *testing.T) {
	t.Run("server error number is recorded", func(t *testing.T) {
		err := database.NewQueryError("failed to execute query", &mysql.MySQLError{Number: 1142, Message: "SELECT command denied"})
		assert.Contains(t, err.Error(), "(MySQL error 1142)")
		assert.Contains(t, err.Error(), "SELECT command denied")
	})

	t.Run("deadline is named", func(t *testing.T) {
		err := database.NewConnectivityError("failed to connect", fmt.Errorf("dial: %w", context.DeadlineExceeded))
		assert.Contains(t, err.Message, "deadline exceeded")
	})

	t.Run("cancellation is named", func(t *testing.T) {
		err := database.NewQueryError("failed to execute query", context.Canceled)
		assert.Contains(t, err.Message, "canceled")
	})
}

func TestErrKindString(t *testing.T) {
	assert.Equal(t, "connectivity", database.ErrKindConnectivity.String())
	assert.Equal(t, "query", database.ErrKindQuery.String())
	assert.Equal(t, "unknown", database.ErrKind(0).String())
}
