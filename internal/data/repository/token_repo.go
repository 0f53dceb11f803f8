package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error
	FindByID(ctx context.Context, id string) (*entity.Token, error)
	FindByUserID(ctx context.Context, userID string) (*entity.Token, error)
	Delete(ctx context.Context, id string) error
}

type tokenRepository struct {
	db  *store.Store
	log *zap.Logger
}

func NewTokenRepository(db *store.Store, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	if err := r.db.Create(CollectionTokens, token.ID, token); err != nil {
		r.log.Error("Failed to create token",
			zap.Error(err), zap.String("user_id", token.UserID))
		return fmt.Errorf("create token: %w", err)
	}
	return nil
}

func (r *tokenRepository) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	var token entity.Token
	if err := r.db.Read(CollectionTokens, id, &token); err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}
	return &token, nil
}

// FindByUserID scans the tokens collection for the one owned by userID.
// Returns (nil, nil) when the user has no token.
func (r *tokenRepository) FindByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	records, err := r.db.ReadAll(CollectionTokens)
	if err != nil {
		r.log.Error("Failed to scan tokens", zap.Error(err))
		return nil, fmt.Errorf("scan tokens: %w", err)
	}

	for _, raw := range records {
		var token entity.Token
		if err := json.Unmarshal(raw, &token); err != nil {
			continue
		}
		if token.UserID == userID {
			return &token, nil
		}
	}

	return nil, nil
}

func (r *tokenRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.Delete(CollectionTokens, id); err != nil {
		r.log.Error("Failed to delete token", zap.Error(err))
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
