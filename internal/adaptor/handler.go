package adaptor

import (
	"errors"
	"net/http"

	"pizza-delivery/internal/data/store"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User     *UserHandler
	Auth     *AuthHandler
	Cart     *CartHandler
	Menu     *MenuHandler
	Checkout *CheckoutHandler
	Order    *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:     NewUserHandler(service.User, log),
		Auth:     NewAuthHandler(service.Auth, log),
		Cart:     NewCartHandler(service.Cart, log),
		Menu:     NewMenuHandler(service.Menu, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
		Order:    NewOrderHandler(service.Order, log),
	}
}

// APIRoutes builds the fixed API route table. The guard is the
// authentication combinator; every route except signup and login is
// wrapped by it.
func (h *Handler) APIRoutes(guard func(router.APIHandler) router.APIHandler) map[string]router.MethodHandlers {
	return map[string]router.MethodHandlers{
		"login": {
			http.MethodPost: h.Auth.Login,
		},
		// Logout revokes the presented token directly and stays
		// unguarded so an expired session can still be cleared.
		"logout": {
			http.MethodGet: h.Auth.Logout,
		},
		"menu": {
			http.MethodGet: guard(h.Menu.Get),
		},
		"users": {
			http.MethodPost:   h.User.Create,
			http.MethodGet:    guard(h.User.Get),
			http.MethodPut:    guard(h.User.Update),
			http.MethodDelete: guard(h.User.Delete),
		},
		"cart": {
			http.MethodPost:   guard(h.Cart.Create),
			http.MethodGet:    guard(h.Cart.Get),
			http.MethodPut:    guard(h.Cart.Update),
			http.MethodDelete: guard(h.Cart.Delete),
		},
		"checkout": {
			http.MethodPost: guard(h.Checkout.Create),
		},
		"orders": {
			http.MethodGet: guard(h.Order.Get),
		},
	}
}

// handleServiceError maps domain errors onto status codes. Store and
// provider failures surface with their domain message, never the raw
// cause.
func handleServiceError(log *zap.Logger, operation string, err error) *router.Result {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, usecase.ErrCartNotFound),
		errors.Is(err, usecase.ErrOrderNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		return router.ErrorWith(http.StatusNotFound, err.Error())

	default:
		log.Warn(operation+" failed", zap.Error(err))
		return router.Error(err.Error())
	}
}
