package middleware

import (
	"context"
	"net/http"

	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

// WithAuthentication returns the combinator that guards protected API
// routes. The guarded handler resolves the caller from the `token`
// header and attaches it to the request; on any failure (missing token,
// invalid or expired session, user lookup failure) it short-circuits
// with a fixed 403 and never invokes the wrapped handler. The uniform
// response avoids leaking which part of the check failed.
func WithAuthentication(
	auth usecase.AuthService,
	users repository.UserRepository,
	logger *zap.Logger,
) func(router.APIHandler) router.APIHandler {
	log := logger.With(zap.String("middleware", "auth"))

	return func(next router.APIHandler) router.APIHandler {
		return func(ctx context.Context, req *router.Request) *router.Result {
			tokenID := req.Token()
			if tokenID == "" {
				log.Warn("Missing token header")
				return unauthorized()
			}

			token, err := auth.ResolveSession(ctx, tokenID)
			if err != nil {
				log.Warn("Session resolution failed", zap.Error(err))
				return unauthorized()
			}

			user, err := users.FindByID(ctx, token.UserID)
			if err != nil {
				log.Warn("Token owner lookup failed",
					zap.Error(err), zap.String("user_id", token.UserID))
				return unauthorized()
			}

			req.User = user
			return next(ctx, req)
		}
	}
}

func unauthorized() *router.Result {
	return router.ErrorWith(http.StatusForbidden, "Unauthorized access.")
}
