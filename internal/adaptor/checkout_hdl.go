package adaptor

import (
	"context"
	"net/http"

	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/checkout?cart_id=
func (h *CheckoutHandler) Create(ctx context.Context, req *router.Request) *router.Result {
	cartID := req.Query.Get("cart_id")
	if cartID == "" {
		return router.Error("Missing cart ID.")
	}

	resp, err := h.service.Checkout(ctx, req.User, cartID)
	if err != nil {
		return handleServiceError(h.log, "checkout", err)
	}

	h.log.Info("Order created",
		zap.String("order_id", resp.ID), zap.Float64("total_amount", resp.TotalAmount))
	return router.SuccessWith(http.StatusCreated, resp)
}
