// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"arcade/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// At least one of Email and Phone must be set.
type RegisterInput struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,min=6,max=32"`
	Password  string `json:"password" validate:"required,min=1"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Birthday  string `json:"birthday"`
	Gender    string `json:"gender"`
	AvatarURL string `json:"avatar_url"`
}

// LoginInput carries a single identifier that is either an email address
// or a phone number, told apart by the presence of '@'.
type LoginInput struct {
	Identifier string `json:"email_phone" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdatePasswordInput defines the data required to overwrite a password.
type UpdatePasswordInput struct {
	Identifier  string `json:"email" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=1"`
}

// RefreshTokenInput carries the raw refresh token presented by a client.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileInput updates mutable profile fields on an existing account.
type UpdateProfileInput struct {
	FirstName string `json:"first_name"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Message string
	User    *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenOutput returns a fresh token pair.
type RefreshTokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
