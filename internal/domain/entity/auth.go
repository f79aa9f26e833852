// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires,
// without asking for credentials again.
type RefreshToken struct {
	ID        uuid.UUID // Unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e. when the user logged in).
}
