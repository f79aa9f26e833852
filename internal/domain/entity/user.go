// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role describes what a player account is allowed to do on the platform.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// Status describes the current lifecycle state of an account.
type Status string

const (
	StatusActive     Status = "active"
	StatusBlocked    Status = "blocked"
	StatusUnverified Status = "unverified"
)

// User is the core entity of the platform, representing a single player account.
// Email and Phone are both optional, but at least one must be set so the
// account can be looked up at login. When present, each is unique across
// all accounts.
type User struct {
	ID           uuid.UUID // Global unique identifier for the account.
	Email        string    // Primary email, empty when the account was registered by phone.
	Phone        string    // Phone number, empty when the account was registered by email.
	PasswordHash string    // Encoded credential string produced by the password hasher.
	FirstName    string
	LastName     string
	Address      string
	Birthday     string // Kept as a plain date string, the platform never computes on it.
	Gender       string
	AvatarURL    string
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last name for display, skipping the
// separator when the last name is empty.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
