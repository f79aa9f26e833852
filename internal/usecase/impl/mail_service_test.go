package impl

import (
	"context"
	"regexp"
	"testing"

	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/errors"
	"arcade/internal/infra/auth"
	"arcade/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMailFixtures(t *testing.T) (usecase.MailUsecase, *memUserRepo, *recordingMailSender) {
	t.Helper()

	userRepo := newMemUserRepo()
	sender := &recordingMailSender{}
	svc := NewMailService(userRepo, auth.NewOTPGenerator(), sender, newDiscardLogger())

	return svc, userRepo, sender
}

func TestMailService_SendOTP(t *testing.T) {
	svc, userRepo, sender := newMailFixtures(t)
	ctx := context.Background()

	user := &entity.User{Email: "a@b.com", FirstName: "Ada", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, svc.SendOTP(ctx, user.ID, "a@b.com"))

	require.Len(t, sender.sent, 1)
	mail := sender.sent[0]
	assert.Equal(t, "a@b.com", mail.To)
	assert.Equal(t, "Hello, Ada", mail.Subject)
	assert.Equal(t, "send_otp", mail.Template)
	assert.Equal(t, "Ada", mail.Data["name"])

	code, ok := mail.Data["otp"].(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
}

func TestMailService_SendOTP_UserNotFound(t *testing.T) {
	svc, _, sender := newMailFixtures(t)

	err := svc.SendOTP(context.Background(), uuid.New(), "ghost@b.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Empty(t, sender.sent)
}

func TestMailService_SendAccountBlocked(t *testing.T) {
	svc, _, sender := newMailFixtures(t)

	err := svc.SendAccountBlocked(context.Background(), &usecase.SendMailInput{
		To:      "a@b.com",
		Subject: "Account blocked",
		Body:    "Your account was blocked.",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "block_account", sender.sent[0].Template)
	assert.Equal(t, "Your account was blocked.", sender.sent[0].Data["body"])
}

func TestMailService_SendPasswordReset(t *testing.T) {
	svc, _, sender := newMailFixtures(t)

	err := svc.SendPasswordReset(context.Background(), &usecase.SendMailInput{
		To:      "a@b.com",
		Subject: "Reset your password",
		Body:    "Use this link to reset.",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "forgot_password", sender.sent[0].Template)
}

func TestMailService_DeliveryFailure(t *testing.T) {
	svc, _, sender := newMailFixtures(t)
	sender.err = errors.New("relay refused connection")

	err := svc.SendPasswordReset(context.Background(), &usecase.SendMailInput{
		To:      "a@b.com",
		Subject: "Reset",
		Body:    "body",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MAIL_DELIVERY_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "relay refused")
}
