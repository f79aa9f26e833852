package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailUsecase struct {
	otpUserID uuid.UUID
	otpEmail  string
	err       error
}

func (f *fakeMailUsecase) SendOTP(ctx context.Context, userID uuid.UUID, toEmail string) error {
	f.otpUserID = userID
	f.otpEmail = toEmail

	return f.err
}

func (f *fakeMailUsecase) SendAccountBlocked(ctx context.Context, input *usecase.SendMailInput) error {
	return f.err
}

func (f *fakeMailUsecase) SendPasswordReset(ctx context.Context, input *usecase.SendMailInput) error {
	return f.err
}

func TestMailHandler_SendOTP(t *testing.T) {
	uc := &fakeMailUsecase{}

	e := newTestEcho(t)
	h := NewMailHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/mail/otp", h.SendOTP)

	userID := uuid.New()
	rec := doRequest(e, http.MethodPost, "/mail/otp",
		`{"user_id":"`+userID.String()+`","email":"a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, uc.otpUserID)
	assert.Equal(t, "a@b.com", uc.otpEmail)
	assert.Contains(t, rec.Body.String(), "Send otp successfully")
}

func TestMailHandler_SendOTP_MissingEmail(t *testing.T) {
	uc := &fakeMailUsecase{}

	e := newTestEcho(t)
	h := NewMailHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/mail/otp", h.SendOTP)

	rec := doRequest(e, http.MethodPost, "/mail/otp",
		`{"user_id":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMailHandler_SendAccountBlocked(t *testing.T) {
	uc := &fakeMailUsecase{}

	e := newTestEcho(t)
	h := NewMailHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/mail/block", h.SendAccountBlocked)

	rec := doRequest(e, http.MethodPost, "/mail/block",
		`{"to":"a@b.com","subject":"Account blocked","body":"Your account was blocked"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Send mail successfully")
}

func TestMailHandler_SendPasswordReset_DeliveryFailure(t *testing.T) {
	uc := &fakeMailUsecase{err: domainerrors.ErrMailDelivery}

	e := newTestEcho(t)
	h := NewMailHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/mail/forgot-password", h.SendPasswordReset)

	rec := doRequest(e, http.MethodPost, "/mail/forgot-password",
		`{"to":"a@b.com","subject":"Reset","body":"Reset your password"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
