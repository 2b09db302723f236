package domain

import (
	"errors"
	"regexp"
	"time"
)

// Role determines which operations a user may perform. The set is closed and
// flat: store owners have no admin capabilities and vice versa.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWeakPassword = errors.New("password can only contain letters and numbers")
var ErrCorruptCredential = errors.New("stored credential unreadable")

// User models an account in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// passwordPattern is a business rule inherited from the product: passwords
// are alphanumeric only. Symbols are rejected even though they would make
// passwords stronger.
var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidPassword reports whether plaintext satisfies the password policy.
// The empty string fails (the pattern requires at least one character).
func ValidPassword(plaintext string) bool {
	return passwordPattern.MatchString(plaintext)
}
