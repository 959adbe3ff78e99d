package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/recipebox-server/internal/model"
)

var _ model.Pool = (*Pool)(nil)

// Pool leases dedicated connections out of a *sql.DB. The pool size is
// the DB's MaxOpenConns; Acquire blocks while all of them are leased.
type Pool struct {
	db             *sql.DB
	acquireTimeout time.Duration
}

// NewPool creates a Pool. A zero acquireTimeout waits for as long as ctx allows.
func NewPool(db *sql.DB, acquireTimeout time.Duration) *Pool {
	return &Pool{db: db, acquireTimeout: acquireTimeout}
}

// Acquire waits for a free connection. It fails with model.ErrPoolExhausted
// when the wait budget runs out and with model.ErrPoolUnavailable for any
// other failure, including cancellation of ctx.
func (p *Pool) Acquire(ctx context.Context) (model.Lease, error) {
	waitCtx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	conn, err := p.db.Conn(waitCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: no connection within %s", model.ErrPoolExhausted, p.acquireTimeout)
		}
		return nil, fmt.Errorf("%w: %w", model.ErrPoolUnavailable, err)
	}

	return &lease{Conn: conn}, nil
}

type lease struct {
	*sql.Conn
	once sync.Once
}

// Release returns the connection to the pool once; later calls do nothing.
func (l *lease) Release() {
	l.once.Do(func() {
		_ = l.Conn.Close()
	})
}
