package usecase

import (
	"context"
	"fmt"
	"time"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/dto/response"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	// Build expands a cart into an order with resolved menu items and
	// computed totals. The order is in TO_PAY status and NOT persisted;
	// checkout persists it only after payment succeeds.
	Build(ctx context.Context, cart *entity.Cart, owner *entity.User) (*entity.Order, error)
	Save(ctx context.Context, order *entity.Order) error
	GetOwnOrder(ctx context.Context, userID, orderID string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	menu MenuService
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, menu MenuService, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		menu: menu,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Build(ctx context.Context, cart *entity.Cart, owner *entity.User) (*entity.Order, error) {
	order := &entity.Order{
		ID:        utils.GenerateID(),
		UserID:    owner.ID,
		UserEmail: owner.Email,
		Status:    entity.StatusToPay,
		OrderedAt: time.Now(),
	}

	for _, lineItem := range cart.Items {
		item, err := s.menu.GetItem(ctx, lineItem.ItemID)
		if err != nil {
			s.log.Warn("Failed to resolve menu item for order",
				zap.Error(err), zap.String("item_id", lineItem.ItemID))
			return nil, fmt.Errorf("could not create the order: %w", err)
		}

		amount := item.Price * float64(lineItem.Quantity)
		order.Items = append(order.Items, entity.OrderItem{
			Item:     *item,
			Quantity: lineItem.Quantity,
			Amount:   amount,
		})
		order.TotalAmount += amount
		order.TotalQuantity += lineItem.Quantity
	}

	return order, nil
}

func (s *orderService) Save(ctx context.Context, order *entity.Order) error {
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to save order",
			zap.Error(err), zap.String("order_id", order.ID))
		return fmt.Errorf("could not save the order")
	}
	return nil
}

func (s *orderService) GetOwnOrder(ctx context.Context, userID, orderID string) (*response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find orders by user",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("could not get the orders")
	}

	for _, order := range orders {
		if order.ID == orderID {
			return response.OrderToResponse(order), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}
