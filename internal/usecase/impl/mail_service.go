package impl

import (
	"context"
	"log/slog"

	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/domain/service"
	"arcade/internal/errors"
	"arcade/internal/usecase"

	"github.com/google/uuid"
)

// mailService implements the MailUsecase interface.
type mailService struct {
	userRepo repository.UserRepository
	otp      service.OTPGenerator
	sender   service.MailSender
	logger   *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(
	userRepo repository.UserRepository,
	otp service.OTPGenerator,
	sender service.MailSender,
	logger *slog.Logger,
) usecase.MailUsecase {
	return &mailService{
		userRepo: userRepo,
		otp:      otp,
		sender:   sender,
		logger:   logger,
	}
}

// SendOTP generates a one-time code and mails it to the given address.
// The code is embedded directly in the mail body and not retained; the
// verification flow consumes it out of band.
func (srv *mailService) SendOTP(ctx context.Context, userID uuid.UUID, toEmail string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("failed to send otp")
		}

		return errors.Wrap(err, "failed to load user for otp mail")
	}

	code, err := srv.otp.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	subject := "Hello, " + user.FirstName
	data := map[string]any{
		"name": user.FirstName,
		"otp":  code,
	}

	if err := srv.sender.Send(ctx, toEmail, subject, "send_otp", data); err != nil {
		srv.logger.Error("Failed to send otp mail", "to", toEmail, "error", err)

		return domainerrors.ErrMailDelivery.WithDetails(err.Error())
	}
	srv.logger.Info("OTP mail sent", "to", toEmail)

	return nil
}

// SendAccountBlocked delivers an account-block notice.
func (srv *mailService) SendAccountBlocked(ctx context.Context, input *usecase.SendMailInput) error {
	return srv.send(ctx, input, "block_account")
}

// SendPasswordReset delivers a password-reset mail.
func (srv *mailService) SendPasswordReset(ctx context.Context, input *usecase.SendMailInput) error {
	return srv.send(ctx, input, "forgot_password")
}

func (srv *mailService) send(ctx context.Context, input *usecase.SendMailInput, templateName string) error {
	data := map[string]any{"body": input.Body}

	if err := srv.sender.Send(ctx, input.To, input.Subject, templateName, data); err != nil {
		srv.logger.Error("Failed to send mail", "to", input.To, "template", templateName, "error", err)

		return domainerrors.ErrMailDelivery.WithDetails(err.Error())
	}
	srv.logger.Info("Mail sent", "to", input.To, "template", templateName)

	return nil
}
