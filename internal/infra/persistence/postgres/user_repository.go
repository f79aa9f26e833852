// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"arcade/internal/domain/entity"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/errors"
	"arcade/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToEntity(), nil
}

// FindByEmail retrieves a single user by exact email match, using the
// unique index on the email column.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToEntity(), nil
}

// FindByPhone retrieves a single user by exact phone match, using the
// unique index on the phone column.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return userM.ToEntity(), nil
}

// List returns all users in creation order.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].ToEntity())
	}

	return users, nil
}

// Create persists a new user entity. Unique-index violations are translated
// into the field-specific duplicate errors so the registration flow stays
// correct even when two requests race past the pre-check.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "phone") {
				return domainerrors.ErrDuplicatePhone.WrapMessage("failed to create user")
			}

			return domainerrors.ErrDuplicateEmail.WrapMessage("failed to create user")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.FromUserEntity(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":         userM.Email,
			"phone":         userM.Phone,
			"password_hash": userM.PasswordHash,
			"first_name":    userM.FirstName,
			"last_name":     userM.LastName,
			"address":       userM.Address,
			"birthday":      userM.Birthday,
			"gender":        userM.Gender,
			"avatar_url":    userM.AvatarURL,
			"role":          userM.Role,
			"status":        userM.Status,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
