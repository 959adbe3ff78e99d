package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	restctx "github.com/dtroode/recipebox-server/internal/api/rest/context"
	"github.com/dtroode/recipebox-server/internal/model"
)

type stubLease struct{ model.DBTX }

func (*stubLease) Release() {}

type requestOption func(ctx context.Context, cm *restctx.Manager) context.Context

func withLease(lease model.Lease) requestOption {
	return func(ctx context.Context, cm *restctx.Manager) context.Context {
		return cm.SetLeaseToContext(ctx, lease)
	}
}

func withClaims(claims model.Claims) requestOption {
	return func(ctx context.Context, cm *restctx.Manager) context.Context {
		return cm.SetClaimsToContext(ctx, claims)
	}
}

func withURLParam(key, value string) requestOption {
	return func(ctx context.Context, _ *restctx.Manager) context.Context {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(key, value)
		return context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
}

func newRequest(method, target, body string, cm *restctx.Manager, opts ...requestOption) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := req.Context()
	for _, opt := range opts {
		ctx = opt(ctx, cm)
	}
	return req.WithContext(ctx)
}
