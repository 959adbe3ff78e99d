package model

import (
	"context"
	"database/sql"
)

// DBTX is the query surface of a leased connection.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Lease is one pooled connection owned exclusively by a single request.
// Release returns it to the pool; calls after the first are no-ops.
type Lease interface {
	DBTX
	Release()
}

// Pool hands out disjoint leases. Acquire fails with ErrPoolExhausted or
// ErrPoolUnavailable.
type Pool interface {
	Acquire(ctx context.Context) (Lease, error)
}

// Repositories builds stores bound to a leased connection.
type Repositories interface {
	Users(q DBTX) UserStore
	Recipes(q DBTX) RecipeStore
}
