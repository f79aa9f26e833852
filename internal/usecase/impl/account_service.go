// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/domain/service"
	"arcade/internal/errors"
	"arcade/internal/usecase"

	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register orchestrates the complete account registration process.
//
// The duplicate pre-check inspects only one field: email when given,
// otherwise phone. That asymmetry matches the platform's established
// behavior; accounts registered with both fields are only pre-checked on
// email. The database's unique indexes remain the real guarantee either
// way: a concurrent registration that slips past the pre-check fails on
// Create with the same field-specific duplicate error.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Email == "" && input.Phone == "" {
		return nil, domainerrors.ErrValidation
	}

	srv.logger.Info("Starting registration", "email", input.Email, "phone", input.Phone)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if input.Email != "" {
			_, err := userRepo.FindByEmail(ctx, input.Email)
			if err == nil {
				return domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
		} else {
			_, err := userRepo.FindByPhone(ctx, input.Phone)
			if err == nil {
				return domainerrors.ErrDuplicatePhone.WrapMessage("registration failed")
			}
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check phone uniqueness")
			}
		}

		newUser := &entity.User{
			Email:        input.Email,
			Phone:        input.Phone,
			PasswordHash: hashedPassword,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Address:      input.Address,
			Birthday:     input.Birthday,
			Gender:       input.Gender,
			AvatarURL:    input.AvatarURL,
			Role:         entity.RolePlayer,
			Status:       entity.StatusUnverified,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Account registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{
		Message: "Register successfully",
		User:    registeredUser,
	}, nil
}

// Login orchestrates the login process: classify the identifier, resolve
// the account, verify the credential and issue a token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "identifier", input.Identifier)

	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := resolveIdentifier(ctx, repoFactory.UserRepo(), input.Identifier)
		if err != nil {
			return err
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrPasswordMismatch.WrapMessage("login failed")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, string(user.Role))
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return errors.WithStack(repoFactory.RefreshTokenRepo().Create(ctx, newRefreshToken))
	})

	if err != nil {
		srv.logger.Warn("Login failed", "identifier", input.Identifier, "error", err.Error())

		return nil, err
	}
	srv.logger.Info("Login successfully", "identifier", input.Identifier)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// UpdatePassword overwrites the stored credential of the account matching
// the identifier. The old password is not verified first; callers reach
// this operation through an authenticated route.
func (srv *accountService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	srv.logger.Info("Updating password", "identifier", input.Identifier)

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.logger.Error("Failed to hash password during update", "error", err)

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := resolveIdentifier(ctx, userRepo, input.Identifier)
		if err != nil {
			return err
		}

		user.PasswordHash = hashedPassword

		return errors.WithStack(userRepo.Update(ctx, user))
	})

	if err != nil {
		srv.logger.Warn("Password update failed", "identifier", input.Identifier, "error", err.Error())

		return err
	}

	return nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair,
// rotating the stored session hash.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token refresh failed")
	}

	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()
		oldHash := hashToken(input.RefreshToken)

		stored, err := tokenRepo.FindByHash(ctx, oldHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for refresh token")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, string(user.Role))
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := tokenRepo.DeleteByHash(ctx, oldHash); err != nil {
			return errors.WithStack(err)
		}

		newRefreshToken := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return errors.WithStack(tokenRepo.Create(ctx, newRefreshToken))
	})

	if err != nil {
		srv.logger.Warn("Token refresh failed", "error", err.Error())

		return nil, err
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// GetUser retrieves a single account by ID.
func (srv *accountService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to get user")
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

// ListUsers returns all accounts.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}

// UpdateProfile updates mutable profile fields on an account. An unknown
// ID creates a fresh record under it instead of failing, so the operation
// behaves as an upsert. The created record carries no credential and no
// identifier: it cannot log in until a password and email or phone are
// set through the other flows.
func (srv *accountService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(err)
			}

			created := &entity.User{
				ID:        id,
				FirstName: input.FirstName,
				Role:      entity.RolePlayer,
				Status:    entity.StatusUnverified,
			}
			if err := userRepo.Create(ctx, created); err != nil {
				return errors.WithStack(err)
			}
			updated = created

			return nil
		}

		user.FirstName = input.FirstName
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes an account by ID.
func (srv *accountService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return errors.WithStack(srv.userRepo.Delete(ctx, id))
}

// resolveIdentifier classifies a login identifier and looks up the matching
// account on the indexed column. The not-found error names the field the
// identifier was classified as, matching the messages clients key on.
func resolveIdentifier(ctx context.Context, userRepo repository.UserRepository, identifier string) (*entity.User, error) {
	isEmail := entity.ClassifyIdentifier(identifier) == entity.IdentifierEmail

	var (
		user *entity.User
		err  error
	)
	if isEmail {
		user, err = userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = userRepo.FindByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.IdentifierNotFound(isEmail).WrapMessage("failed to resolve identifier")
		}

		return nil, errors.Wrap(err, "failed to resolve identifier")
	}

	return user, nil
}

// hashToken stores refresh tokens by SHA-256 hash so a database leak does
// not yield usable sessions.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
