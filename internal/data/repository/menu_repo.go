package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

type MenuRepository interface {
	FindByID(ctx context.Context, id string) (*entity.MenuItem, error)
	FindAll(ctx context.Context) ([]entity.MenuItem, error)
	Replace(ctx context.Context, items []entity.MenuItem) error
}

type menuRepository struct {
	db  *store.Store
	log *zap.Logger
}

func NewMenuRepository(db *store.Store, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) FindByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.db.Read(CollectionMenuItems, id, &item); err != nil {
		return nil, fmt.Errorf("find menu item %s: %w", id, err)
	}
	return &item, nil
}

func (r *menuRepository) FindAll(ctx context.Context) ([]entity.MenuItem, error) {
	records, err := r.db.ReadAll(CollectionMenuItems)
	if err != nil {
		r.log.Error("Failed to scan menu items", zap.Error(err))
		return nil, fmt.Errorf("scan menu items: %w", err)
	}

	items := make([]entity.MenuItem, 0, len(records))
	for _, raw := range records {
		var item entity.MenuItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// Replace wipes the menu-items collection and writes the given items.
// Used by the startup worker when reloading the menu from its CSV source.
func (r *menuRepository) Replace(ctx context.Context, items []entity.MenuItem) error {
	existing, err := r.db.List(CollectionMenuItems)
	if err != nil {
		return fmt.Errorf("list menu items: %w", err)
	}

	for _, id := range existing {
		if err := r.db.Delete(CollectionMenuItems, id); err != nil {
			r.log.Warn("Failed to delete stale menu item",
				zap.Error(err), zap.String("item_id", id))
		}
	}

	for _, item := range items {
		if err := r.db.Create(CollectionMenuItems, item.ID, item); err != nil {
			r.log.Error("Failed to write menu item",
				zap.Error(err), zap.String("item_id", item.ID))
			return fmt.Errorf("write menu item %s: %w", item.ID, err)
		}
	}

	r.log.Info("Menu items replaced", zap.Int("count", len(items)))
	return nil
}
