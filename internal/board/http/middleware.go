package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/askfold/askfold/internal/board/domain"
	"github.com/askfold/askfold/internal/board/service"
	"github.com/askfold/askfold/pkg/httpx"
	"github.com/askfold/askfold/pkg/jwtx"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// CurrentUser returns the authenticated user placed in the context by
// AuthnMiddleware. The second return is false on unauthenticated requests.
func CurrentUser(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

// AuthnMiddleware resolves the bearer token to a user and stores it in the
// request context. The token's signature is checked before any claim, so a
// tampered token never reports as merely expired.
func AuthnMiddleware(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := httpx.BearerToken(r)
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			user, err := identity.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, jwtx.ErrExpired):
					httpx.WriteBearerError(w, "token expired")
				case errors.Is(err, jwtx.ErrMalformed),
					errors.Is(err, jwtx.ErrIssuer),
					errors.Is(err, jwtx.ErrNotYetValid),
					errors.Is(err, service.ErrUnknownSubject):
					httpx.WriteBearerError(w, "invalid token")
				default:
					ErrServerError.WriteError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated non-admin users with 403. It must sit
// inside AuthnMiddleware in the chain.
func RequireAdmin(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}
			if err := identity.RequireAdmin(user); err != nil {
				ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
