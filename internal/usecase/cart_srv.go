package usecase

import (
	"context"
	"fmt"
	"time"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/dto/request"
	"pizza-delivery/internal/dto/response"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	Create(ctx context.Context, owner *entity.User, req *request.CartRequest) (*response.CartResponse, error)
	Get(ctx context.Context, owner *entity.User, cartID string) (*response.CartResponse, error)
	Update(ctx context.Context, owner *entity.User, cartID string, req *request.CartRequest) (*response.CartResponse, error)
	Delete(ctx context.Context, owner *entity.User, cartID string) error

	// GetOwnCart returns the raw cart when it is owned by the user.
	// Checkout uses it directly.
	GetOwnCart(ctx context.Context, userID, cartID string) (*entity.Cart, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

// Create replaces whatever cart the user already owns: the prior cart is
// deleted before the new one is written. The two steps are not atomic.
func (s *cartService) Create(ctx context.Context, owner *entity.User, req *request.CartRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Cart.FindByUserID(ctx, owner.ID)
	if err != nil {
		s.log.Error("Failed to look up existing cart",
			zap.Error(err), zap.String("user_id", owner.ID))
		return nil, fmt.Errorf("could not create the cart")
	}
	if existing != nil {
		if err := s.repo.Cart.Delete(ctx, existing.ID); err != nil {
			s.log.Error("Failed to delete existing cart",
				zap.Error(err), zap.String("cart_id", existing.ID))
			return nil, fmt.Errorf("could not create the cart")
		}
		s.log.Info("Deleted existing cart", zap.String("cart_id", existing.ID))
	}

	cart := &entity.Cart{
		ID:        utils.GenerateID(),
		UserID:    owner.ID,
		UserEmail: owner.Email,
		Items:     req.Items,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Cart.Create(ctx, cart); err != nil {
		s.log.Error("Failed to create cart",
			zap.Error(err), zap.String("user_id", owner.ID))
		return nil, fmt.Errorf("could not create the cart")
	}

	s.log.Info("Cart created",
		zap.String("cart_id", cart.ID), zap.String("user_id", owner.ID))

	return response.CartToResponse(cart), nil
}

func (s *cartService) Get(ctx context.Context, owner *entity.User, cartID string) (*response.CartResponse, error) {
	cart, err := s.GetOwnCart(ctx, owner.ID, cartID)
	if err != nil {
		return nil, err
	}
	return response.CartToResponse(cart), nil
}

func (s *cartService) Update(ctx context.Context, owner *entity.User, cartID string, req *request.CartRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cart, err := s.GetOwnCart(ctx, owner.ID, cartID)
	if err != nil {
		return nil, err
	}

	cart.Items = req.Items

	if err := s.repo.Cart.Update(ctx, cart); err != nil {
		s.log.Error("Failed to update cart",
			zap.Error(err), zap.String("cart_id", cartID))
		return nil, fmt.Errorf("could not update the cart")
	}

	s.log.Info("Cart updated", zap.String("cart_id", cartID))
	return response.CartToResponse(cart), nil
}

func (s *cartService) Delete(ctx context.Context, owner *entity.User, cartID string) error {
	cart, err := s.GetOwnCart(ctx, owner.ID, cartID)
	if err != nil {
		return err
	}

	if err := s.repo.Cart.Delete(ctx, cart.ID); err != nil {
		s.log.Error("Failed to delete cart",
			zap.Error(err), zap.String("cart_id", cartID))
		return fmt.Errorf("could not delete the cart")
	}

	s.log.Info("Cart deleted", zap.String("cart_id", cartID))
	return nil
}

// GetOwnCart resolves the single cart owned by userID and checks it is
// the one being asked for. Anything else reads as not found.
func (s *cartService) GetOwnCart(ctx context.Context, userID, cartID string) (*entity.Cart, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find cart by user",
			zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("could not get the cart")
	}

	if cart == nil || cart.ID != cartID {
		return nil, fmt.Errorf("%w: %s", ErrCartNotFound, cartID)
	}

	return cart, nil
}
