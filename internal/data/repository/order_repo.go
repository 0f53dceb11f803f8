package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Order, error)
}

type orderRepository struct {
	db  *store.Store
	log *zap.Logger
}

func NewOrderRepository(db *store.Store, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := r.db.Create(CollectionOrders, order.ID, order); err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err), zap.String("order_id", order.ID))
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := r.db.Read(CollectionOrders, id, &order); err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

// FindByUserID scans all orders and returns those owned by userID.
func (r *orderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	records, err := r.db.ReadAll(CollectionOrders)
	if err != nil {
		r.log.Error("Failed to scan orders", zap.Error(err))
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	var orders []*entity.Order
	for _, raw := range records {
		var order entity.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			continue
		}
		if order.UserID == userID {
			o := order
			orders = append(orders, &o)
		}
	}

	return orders, nil
}
