package auth

import (
	"context"

	"freightforge/internal/entities"
)

// Principal is the caller identified by a bearer token.
type Principal struct {
	Username string
	Role     entities.AccountRole
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
