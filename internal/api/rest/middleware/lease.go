package middleware

import (
	"fmt"
	"net/http"

	"github.com/dtroode/recipebox-server/internal/api/rest/response"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// Lease gives every request its own pooled connection for the whole
// handler chain and returns it when the chain finishes, however it finishes.
type Lease struct {
	pool           model.Pool
	statements     []string
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewLease creates a Lease middleware. statements run on every leased
// connection before the request sees it.
func NewLease(pool model.Pool, statements []string, contextManager model.ContextManager, logger *logger.Logger) *Lease {
	return &Lease{
		pool:           pool,
		statements:     statements,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle acquires a connection, configures its session and passes it
// downstream through the request context.
func (m *Lease) Handle(next response.HandlerFunc) response.HandlerFunc {
	return func(r *http.Request) (*response.Response, error) {
		ctx := r.Context()

		lease, err := m.pool.Acquire(ctx)
		if err != nil {
			m.logger.Warn("Lease middleware: failed to acquire connection",
				"path", r.URL.Path,
				"error", err.Error())
			return nil, err
		}
		defer lease.Release()

		for _, stmt := range m.statements {
			if _, err := lease.ExecContext(ctx, stmt); err != nil {
				m.logger.Error("Lease middleware: failed to configure session",
					"path", r.URL.Path,
					"error", err.Error())
				return nil, fmt.Errorf("%w: configure session: %w", model.ErrPoolUnavailable, err)
			}
		}

		return next(r.WithContext(m.contextManager.SetLeaseToContext(ctx, lease)))
	}
}
