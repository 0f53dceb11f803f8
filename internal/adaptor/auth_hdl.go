package adaptor

import (
	"context"

	"pizza-delivery/internal/dto/request"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(ctx context.Context, req *router.Request) *router.Result {
	var body request.LoginRequest
	req.Bind(&body)

	if body.Email == "" {
		return router.Error("Missing email.")
	}
	if body.Password == "" {
		return router.Error("Missing password.")
	}

	resp, err := h.service.Login(ctx, &body)
	if err != nil {
		return handleServiceError(h.log, "login", err)
	}

	h.log.Info("User has successfully logged in")
	return router.Success(resp)
}

// Logout handles GET /api/logout. The presented token itself is
// revoked; no session resolution happens first.
func (h *AuthHandler) Logout(ctx context.Context, req *router.Request) *router.Result {
	tokenID := req.Token()
	if tokenID == "" {
		return router.Error("Missing token.")
	}

	if err := h.service.Logout(ctx, tokenID); err != nil {
		return handleServiceError(h.log, "logout", err)
	}

	h.log.Info("User has successfully logged out")
	return router.Success(nil)
}
