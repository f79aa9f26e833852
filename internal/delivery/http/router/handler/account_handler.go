// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"arcade/internal/delivery/http/response"
	"arcade/internal/infra/task"
	"arcade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	pool   *task.Pool
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, pool *task.Pool, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		pool:   pool,
		logger: logger,
	}
}

// Register handles the account registration request. The actual work is
// submitted to the bounded worker pool so a burst of signups degrades
// into 503s instead of unbounded goroutines.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	var output *usecase.RegisterOutput
	future, err := h.pool.Submit(ctx, func(jobCtx context.Context) error {
		var regErr error
		output, regErr = h.uc.Register(jobCtx, input)

		return regErr
	})
	if err != nil {
		if errors.Is(err, task.ErrQueueFull) {
			return response.ServiceUnavailable(c, "REGISTRATION_BUSY", "Registration is busy, please retry")
		}

		return errors.WithStack(err)
	}

	if err := future.Wait(ctx); err != nil {
		return errors.WithStack(err)
	}

	// Do not return the password hash in the response.
	return response.Success(c, http.StatusCreated, map[string]any{
		"id":    output.User.ID,
		"email": output.User.Email,
		"phone": output.User.Phone,
	}, output.Message)
}

// Login handles the login request. The identifier field accepts either
// an email address or a phone number.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successfully")
}

// UpdatePassword handles the password overwrite request.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	var input *usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Update password successfully")
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// GetUser returns a single account by ID.
func (h *AccountHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// ListUsers returns every registered account.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UpdateProfile updates mutable profile fields on an account.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes an account.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
