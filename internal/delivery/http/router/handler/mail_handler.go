package handler

import (
	"log/slog"
	"net/http"

	"arcade/internal/delivery/http/response"
	"arcade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MailHandler holds dependencies for mail-related handlers.
type MailHandler struct {
	uc     usecase.MailUsecase
	logger *slog.Logger
}

// NewMailHandler is the constructor for MailHandler, injected by Fx.
func NewMailHandler(uc usecase.MailUsecase, logger *slog.Logger) *MailHandler {
	return &MailHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendOTPRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
}

// SendOTP generates a one-time code for the given account and mails it.
func (h *MailHandler) SendOTP(c echo.Context) error {
	var input *sendOTPRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendOTP(c.Request().Context(), input.UserID, input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Send otp successfully")
}

// SendAccountBlocked delivers an account-block notice mail.
func (h *MailHandler) SendAccountBlocked(c echo.Context) error {
	var input *usecase.SendMailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mail input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendAccountBlocked(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Send mail successfully")
}

// SendPasswordReset delivers a password-reset mail.
func (h *MailHandler) SendPasswordReset(c echo.Context) error {
	var input *usecase.SendMailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mail input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendPasswordReset(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Send mail successfully")
}
