package adaptor

import (
	"context"
	"net/http"

	"pizza-delivery/internal/dto/request"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/cart
func (h *CartHandler) Create(ctx context.Context, req *router.Request) *router.Result {
	var body request.CartRequest
	req.Bind(&body)

	resp, err := h.service.Create(ctx, req.User, &body)
	if err != nil {
		return handleServiceError(h.log, "create cart", err)
	}

	h.log.Info("Cart created", zap.String("cart_id", resp.ID))
	return router.SuccessWith(http.StatusCreated, resp)
}

// Get handles GET /api/cart?id=
func (h *CartHandler) Get(ctx context.Context, req *router.Request) *router.Result {
	cartID := req.Query.Get("id")
	if cartID == "" {
		return router.Error("Missing cart ID.")
	}

	resp, err := h.service.Get(ctx, req.User, cartID)
	if err != nil {
		return handleServiceError(h.log, "get cart", err)
	}

	return router.Success(resp)
}

// Update handles PUT /api/cart?id=
func (h *CartHandler) Update(ctx context.Context, req *router.Request) *router.Result {
	cartID := req.Query.Get("id")
	if cartID == "" {
		return router.Error("Missing cart ID.")
	}

	var body request.CartRequest
	req.Bind(&body)

	resp, err := h.service.Update(ctx, req.User, cartID, &body)
	if err != nil {
		return handleServiceError(h.log, "update cart", err)
	}

	h.log.Info("Cart updated", zap.String("cart_id", cartID))
	return router.Success(resp)
}

// Delete handles DELETE /api/cart?id=
func (h *CartHandler) Delete(ctx context.Context, req *router.Request) *router.Result {
	cartID := req.Query.Get("id")
	if cartID == "" {
		return router.Error("Missing cart ID.")
	}

	if err := h.service.Delete(ctx, req.User, cartID); err != nil {
		return handleServiceError(h.log, "delete cart", err)
	}

	h.log.Info("Cart deleted", zap.String("cart_id", cartID))
	return router.Success(nil)
}
