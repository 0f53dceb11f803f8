package usecase

import (
	"context"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/dto/response"

	"go.uber.org/zap"
)

type MenuService interface {
	GetMenu(ctx context.Context) (*response.MenuResponse, error)
	GetItem(ctx context.Context, id string) (*entity.MenuItem, error)
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context) (*response.MenuResponse, error) {
	items, err := s.repo.Menu.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to read menu", zap.Error(err))
		return nil, fmt.Errorf("could not get the menu")
	}

	return &response.MenuResponse{Items: items}, nil
}

func (s *menuService) GetItem(ctx context.Context, id string) (*entity.MenuItem, error) {
	item, err := s.repo.Menu.FindByID(ctx, id)
	if err != nil {
		s.log.Warn("Failed to read menu item", zap.Error(err), zap.String("item_id", id))
		return nil, fmt.Errorf("could not get the item: %w", err)
	}
	return item, nil
}
