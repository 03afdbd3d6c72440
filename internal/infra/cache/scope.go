package cache

import (
	"context"
	"finance-tracker/internal/infra/utils"
)

type requestScopeKey struct{}

// WithRequestScope tags ctx with a fresh scope. Entries keyed by the scope are
// only reachable from the request that created it.
func WithRequestScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestScopeKey{}, utils.GenerateUUID())
}

// RequestScope returns the scope set by WithRequestScope.
func RequestScope(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(requestScopeKey{}).(string)
	return scope, ok && scope != ""
}
