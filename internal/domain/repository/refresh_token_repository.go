package repository

import (
	"context"
	"errors"

	"arcade/internal/domain/entity"
)

// ErrTokenNotFound is returned when a refresh token is not found.
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	FindByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteByHash deletes a refresh token by its hash, ending the session.
	DeleteByHash(ctx context.Context, hash string) error
}
