package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SendMailInput carries a caller-authored transactional mail.
type SendMailInput struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// MailUsecase defines the mail flows of the platform: OTP verification,
// account-block notices and password-reset mails.
type MailUsecase interface {
	// SendOTP generates a fresh one-time code and mails it to the given
	// address, greeting the user by name.
	SendOTP(ctx context.Context, userID uuid.UUID, toEmail string) error

	// SendAccountBlocked delivers an account-block notice.
	SendAccountBlocked(ctx context.Context, input *SendMailInput) error

	// SendPasswordReset delivers a password-reset mail.
	SendPasswordReset(ctx context.Context, input *SendMailInput) error
}
