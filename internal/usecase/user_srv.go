package usecase

import (
	"context"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/dto/request"
	"pizza-delivery/internal/dto/response"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByID(ctx context.Context, id string) (*response.UserResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.PaymentMethod != nil {
		if errs := utils.ValidateStruct(req.PaymentMethod); len(errs) > 0 {
			return nil, fmt.Errorf("missing required field(s) in payment method")
		}
	}

	// 2. Email uniqueness by collection scan. Best effort only: two
	// concurrent registrations can both pass this check.
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("could not create the user")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("could not create the user")
	}

	// 4. Create user
	user := &entity.User{
		ID:            utils.GenerateID(),
		Email:         req.Email,
		Password:      hashed,
		Name:          req.Name,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("could not create the user")
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID), zap.String("email", user.Email))

	return response.UserToResponse(user), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Warn("Failed to get user", zap.Error(err), zap.String("user_id", id))
		return nil, fmt.Errorf("could not get the user: %w", err)
	}
	return response.UserToResponse(user), nil
}

// Update merges the partial payload over the stored record and writes it
// back whole. The window between read and write is unsynchronized.
func (s *userService) Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if req.Empty() {
		return nil, fmt.Errorf("missing required field(s) in payload")
	}
	if req.PaymentMethod != nil {
		if errs := utils.ValidateStruct(req.PaymentMethod); len(errs) > 0 {
			return nil, fmt.Errorf("missing required field(s) in payment method")
		}
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Warn("Failed to read user for update", zap.Error(err), zap.String("user_id", id))
		return nil, fmt.Errorf("could not update the user: %w", err)
	}

	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("could not update the user")
		}
		user.Password = hashed
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.PaymentMethod != nil {
		user.PaymentMethod = req.PaymentMethod
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id))
		return nil, fmt.Errorf("could not update the user: %w", err)
	}

	s.log.Info("User updated", zap.String("user_id", id))
	return response.UserToResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete user", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("could not delete the user: %w", err)
	}

	s.log.Info("User deleted", zap.String("user_id", id))
	return nil
}
