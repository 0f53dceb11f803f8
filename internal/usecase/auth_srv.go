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

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
	IssueToken(ctx context.Context, user *entity.User) (*entity.Token, error)
	ResolveSession(ctx context.Context, tokenID string) (*entity.Token, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Login checks the credentials and issues a fresh token. Unknown email
// and wrong password collapse into the same error.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID), zap.String("email", user.Email))

	return response.LoginToResponse(token), nil
}

// Logout revokes the presented token. An absent token surfaces as the
// same generic error as a store failure.
func (s *authService) Logout(ctx context.Context, tokenID string) error {
	if err := s.repo.Token.Delete(ctx, tokenID); err != nil {
		s.log.Warn("Failed to revoke token", zap.Error(err))
		return fmt.Errorf("could not delete the token")
	}

	s.log.Info("User logged out")
	return nil
}

// IssueToken revokes any token the user already holds, then creates a
// new one. Each user has at most one live token.
func (s *authService) IssueToken(ctx context.Context, user *entity.User) (*entity.Token, error) {
	existing, err := s.repo.Token.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to look up existing token",
			zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("could not create the token")
	}
	if existing != nil {
		if err := s.repo.Token.Delete(ctx, existing.ID); err != nil {
			s.log.Error("Failed to delete existing token",
				zap.Error(err), zap.String("token_id", existing.ID))
			return nil, fmt.Errorf("could not create the token")
		}
		s.log.Info("Deleted existing token", zap.String("token_id", existing.ID))
	}

	token := &entity.Token{
		ID:        utils.GenerateTokenID(),
		UserID:    user.ID,
		UserEmail: user.Email,
		Expires:   utils.ExpiryFromNow(s.config.Auth.TokenExpiryHours),
	}

	if err := s.repo.Token.Create(ctx, token); err != nil {
		s.log.Error("Failed to create token",
			zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("could not create the token")
	}

	return token, nil
}

// ResolveSession returns the token when it exists and has not expired.
// An expired token is rejected but not purged from the store.
func (s *authService) ResolveSession(ctx context.Context, tokenID string) (*entity.Token, error) {
	token, err := s.repo.Token.FindByID(ctx, tokenID)
	if err != nil {
		s.log.Warn("Failed to read token", zap.Error(err))
		return nil, ErrInvalidToken
	}

	if token.Expired(time.Now()) {
		s.log.Warn("Token expired",
			zap.String("token_id", tokenID), zap.Time("expires", token.Expires))
		return nil, ErrTokenExpired
	}

	return token, nil
}
