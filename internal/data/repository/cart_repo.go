package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	FindByID(ctx context.Context, id string) (*entity.Cart, error)
	FindByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Update(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, id string) error
}

type cartRepository struct {
	db  *store.Store
	log *zap.Logger
}

func NewCartRepository(db *store.Store, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if err := r.db.Create(CollectionCarts, cart.ID, cart); err != nil {
		r.log.Error("Failed to create cart",
			zap.Error(err), zap.String("cart_id", cart.ID))
		return fmt.Errorf("create cart: %w", err)
	}
	return nil
}

func (r *cartRepository) FindByID(ctx context.Context, id string) (*entity.Cart, error) {
	var cart entity.Cart
	if err := r.db.Read(CollectionCarts, id, &cart); err != nil {
		return nil, fmt.Errorf("find cart %s: %w", id, err)
	}
	return &cart, nil
}

// FindByUserID scans all carts for the one owned by userID. Returns
// (nil, nil) when the user has no cart.
func (r *cartRepository) FindByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	records, err := r.db.ReadAll(CollectionCarts)
	if err != nil {
		r.log.Error("Failed to scan carts", zap.Error(err))
		return nil, fmt.Errorf("scan carts: %w", err)
	}

	for _, raw := range records {
		var cart entity.Cart
		if err := json.Unmarshal(raw, &cart); err != nil {
			continue
		}
		if cart.UserID == userID {
			return &cart, nil
		}
	}

	return nil, nil
}

func (r *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	if err := r.db.Update(CollectionCarts, cart.ID, cart); err != nil {
		r.log.Error("Failed to update cart",
			zap.Error(err), zap.String("cart_id", cart.ID))
		return fmt.Errorf("update cart: %w", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.Delete(CollectionCarts, id); err != nil {
		r.log.Error("Failed to delete cart",
			zap.Error(err), zap.String("cart_id", id))
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
