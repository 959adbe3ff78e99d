package context

import (
	"context"

	"github.com/dtroode/recipebox-server/internal/model"
)

type contextKey int

const (
	leaseKey contextKey = iota
	claimsKey
)

var _ model.ContextManager = (*Manager)(nil)

// Manager stores per-request state in the request context.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetLeaseToContext attaches the connection leased for the request.
func (m *Manager) SetLeaseToContext(ctx context.Context, lease model.Lease) context.Context {
	return context.WithValue(ctx, leaseKey, lease)
}

// GetLeaseFromContext returns the connection leased for the request.
func (m *Manager) GetLeaseFromContext(ctx context.Context) (model.Lease, bool) {
	lease, ok := ctx.Value(leaseKey).(model.Lease)
	if !ok || lease == nil {
		return nil, false
	}
	return lease, true
}

// SetClaimsToContext attaches the verified identity of the caller.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext returns the verified identity of the caller.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(model.Claims)
	return claims, ok
}
