package adaptor

import (
	"context"

	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/orders?id=
func (h *OrderHandler) Get(ctx context.Context, req *router.Request) *router.Result {
	orderID := req.Query.Get("id")
	if orderID == "" {
		return router.Error("Missing order ID.")
	}

	resp, err := h.service.GetOwnOrder(ctx, req.User.ID, orderID)
	if err != nil {
		return handleServiceError(h.log, "get order", err)
	}

	return router.Success(resp)
}
