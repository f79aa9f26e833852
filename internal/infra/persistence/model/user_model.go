// Package model contains the GORM persistence models. They mirror database
// tables and are mapped to and from pure domain entities at the repository
// boundary.
package model

import (
	"time"

	"arcade/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email and phone are nullable with
// partial unique indexes: an account registered by phone has no email row
// value at all, and the index still rejects a second registration of the
// same email or phone at the database level. That constraint, not the
// application-side pre-check, is what makes registration uniqueness safe
// under concurrency.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone        *string   `gorm:"type:varchar(32);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	Birthday     string    `gorm:"type:varchar(32)"`
	Gender       string    `gorm:"type:varchar(16)"`
	AvatarURL    string    `gorm:"type:text"`
	Role         string    `gorm:"type:varchar(16);not null;default:'player'"`
	Status       string    `gorm:"type:varchar(16);not null;default:'unverified'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Address:      m.Address,
		Birthday:     m.Birthday,
		Gender:       m.Gender,
		AvatarURL:    m.AvatarURL,
		Role:         entity.Role(m.Role),
		Status:       entity.Status(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Email != nil {
		user.Email = *m.Email
	}
	if m.Phone != nil {
		user.Phone = *m.Phone
	}

	return user
}

// FromUserEntity maps a domain entity to the persistence model. Empty email
// or phone become NULL so the partial unique indexes ignore them.
func FromUserEntity(user *entity.User) *UserModel {
	m := &UserModel{
		ID:           user.ID,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Address:      user.Address,
		Birthday:     user.Birthday,
		Gender:       user.Gender,
		AvatarURL:    user.AvatarURL,
		Role:         string(user.Role),
		Status:       string(user.Status),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.Email != "" {
		email := user.Email
		m.Email = &email
	}
	if user.Phone != "" {
		phone := user.Phone
		m.Phone = &phone
	}

	return m
}
