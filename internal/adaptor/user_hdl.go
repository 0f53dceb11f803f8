package adaptor

import (
	"context"
	"net/http"

	"pizza-delivery/internal/dto/request"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/users (signup, public)
func (h *UserHandler) Create(ctx context.Context, req *router.Request) *router.Result {
	var body request.CreateUserRequest
	req.Bind(&body)

	resp, err := h.service.Register(ctx, &body)
	if err != nil {
		return handleServiceError(h.log, "create user", err)
	}

	h.log.Info("User created", zap.String("user_id", resp.ID))
	return router.SuccessWith(http.StatusCreated, resp)
}

// Get handles GET /api/users?id=
func (h *UserHandler) Get(ctx context.Context, req *router.Request) *router.Result {
	id := req.Query.Get("id")
	if id == "" {
		return router.Error("Missing ID.")
	}

	// Callers can only read their own record.
	if req.User.ID != id {
		return router.ErrorWith(http.StatusForbidden, "Could not get the user.")
	}

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		return handleServiceError(h.log, "get user", err)
	}

	return router.Success(resp)
}

// Update handles PUT /api/users?id=
func (h *UserHandler) Update(ctx context.Context, req *router.Request) *router.Result {
	id := req.Query.Get("id")
	if id == "" {
		return router.Error("Missing ID.")
	}

	if req.User.ID != id {
		return router.ErrorWith(http.StatusForbidden, "Could not get the user.")
	}

	var body request.UpdateUserRequest
	req.Bind(&body)

	resp, err := h.service.Update(ctx, id, &body)
	if err != nil {
		return handleServiceError(h.log, "update user", err)
	}

	h.log.Info("User updated", zap.String("user_id", id))
	return router.Success(resp)
}

// Delete handles DELETE /api/users?id=
func (h *UserHandler) Delete(ctx context.Context, req *router.Request) *router.Result {
	id := req.Query.Get("id")
	if id == "" {
		return router.Error("Missing ID.")
	}

	if req.User.ID != id {
		return router.ErrorWith(http.StatusForbidden, "Could not get the user.")
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return handleServiceError(h.log, "delete user", err)
	}

	h.log.Info("User deleted", zap.String("user_id", id))
	return router.Success(nil)
}
