package model

import "context"

// ContextManager attaches per-request state to a context.
type ContextManager interface {
	SetLeaseToContext(ctx context.Context, lease Lease) context.Context
	GetLeaseFromContext(ctx context.Context) (Lease, bool)
	SetClaimsToContext(ctx context.Context, claims Claims) context.Context
	GetClaimsFromContext(ctx context.Context) (Claims, bool)
}
