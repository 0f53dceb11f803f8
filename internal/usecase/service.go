package usecase

import (
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/provider"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User     UserService
	Auth     AuthService
	Cart     CartService
	Menu     MenuService
	Order    OrderService
	Checkout CheckoutService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	payment provider.PaymentProvider,
	email provider.EmailSender,
	log *zap.Logger,
) *Service {
	menu := NewMenuService(repo, log)
	cart := NewCartService(repo, log)
	order := NewOrderService(repo, menu, log)

	return &Service{
		User:     NewUserService(repo, log),
		Auth:     NewAuthService(repo, config, log),
		Cart:     cart,
		Menu:     menu,
		Order:    order,
		Checkout: NewCheckoutService(cart, order, payment, email, log),
	}
}
