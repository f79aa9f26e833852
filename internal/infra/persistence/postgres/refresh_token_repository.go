package postgres

import (
	"context"
	"time"

	"arcade/internal/domain/entity"
	"arcade/internal/domain/repository"
	"arcade/internal/errors"
	"arcade/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain's RefreshTokenRepository interface using GORM.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := model.FromRefreshTokenEntity(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByHash retrieves an unexpired refresh token record by its stored hash.
func (repo *refreshTokenRepository) FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		First(&tokenM, "token_hash = ? AND expires_at > ?", hash, time.Now()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return tokenM.ToEntity(), nil
}

// DeleteByHash deletes a refresh token by its hash, ending the session.
func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, hash string) error {
	if err := repo.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", hash).Error; err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}
