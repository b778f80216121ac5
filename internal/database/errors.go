package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrKind classifies a database failure.
type ErrKind int

const (
	// ErrKindConnectivity means a connection to the server could not be established.
	ErrKindConnectivity ErrKind = iota + 1
	// ErrKindQuery means a statement failed after the connection was established.
	ErrKindQuery
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindConnectivity:
		return "connectivity"
	case ErrKindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Error is the error type returned by sessions and session factories.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewConnectivityError returns an Error of kind ErrKindConnectivity.
func NewConnectivityError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindConnectivity, Message: describe(msg, cause), Cause: cause}
}

// NewQueryError returns an Error of kind ErrKindQuery.
func NewQueryError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindQuery, Message: describe(msg, cause), Cause: cause}
}

// IsConnectivityError reports whether err, or any error it wraps, is a connectivity failure.
func IsConnectivityError(err error) bool {
	return isKind(err, ErrKindConnectivity)
}

// IsQueryError reports whether err, or any error it wraps, is a query failure.
func IsQueryError(err error) bool {
	return isKind(err, ErrKindQuery)
}

func isKind(err error, kind ErrKind) bool {
	var dbErr *Error
	return errors.As(err, &dbErr) && dbErr.Kind == kind
}

// describe appends the server error number to msg, and names the deadline or
// cancellation so the caller can tell it apart from a server-side failure.
func describe(msg string, cause error) string {
	var mysqlErr *mysql.MySQLError
	switch {
	case errors.As(cause, &mysqlErr):
		return fmt.Sprintf("%s (MySQL error %d)", msg, mysqlErr.Number)
	case errors.Is(cause, context.DeadlineExceeded):
		return msg + " (deadline exceeded)"
	case errors.Is(cause, context.Canceled):
		return msg + " (canceled)"
	default:
		return msg
	}
}
