package auth

import (
	"errors"
	"net/http"
	"strings"

	"freightforge/internal/entities"
	"freightforge/internal/pkg/respond"
	"freightforge/internal/pkg/tokens"
	"freightforge/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware requires a valid bearer token and stores the caller in the
// request context.
func Middleware(log handlerLogger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respond.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := validator.Validate(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				if !errors.Is(err, tokens.ErrTokenExpired) {
					log.Warn("rejected bearer token",
						logger.NewField("path", r.URL.Path),
						logger.NewField("error", err),
					)
				}
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{
				Username: claims.Username(),
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after Middleware.
func RequireRole(role entities.AccountRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if principal.Role != role {
				respond.Error(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
