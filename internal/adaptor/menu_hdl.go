package adaptor

import (
	"context"

	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/menu
func (h *MenuHandler) Get(ctx context.Context, req *router.Request) *router.Result {
	resp, err := h.service.GetMenu(ctx)
	if err != nil {
		return handleServiceError(h.log, "get menu", err)
	}

	h.log.Info("Menu fetched", zap.Int("items", len(resp.Items)))
	return router.Success(resp)
}
