package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db  *store.Store
	log *zap.Logger
}

func NewUserRepository(db *store.Store, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.Create(CollectionUsers, user.ID, user); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Read(CollectionUsers, id, &user); err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return &user, nil
}

// FindByEmail scans the whole collection; email lookups have no index.
// The match is case-insensitive. A missing user returns (nil, nil).
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	records, err := r.db.ReadAll(CollectionUsers)
	if err != nil {
		r.log.Error("Failed to scan users", zap.Error(err))
		return nil, fmt.Errorf("scan users: %w", err)
	}

	for _, raw := range records {
		var user entity.User
		if err := json.Unmarshal(raw, &user); err != nil {
			continue
		}
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}

	return nil, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.db.Update(CollectionUsers, user.ID, user); err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.Delete(CollectionUsers, id); err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
