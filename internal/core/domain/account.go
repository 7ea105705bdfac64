package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountDeleted     = errors.New("account is deleted")
	ErrEmailTaken         = errors.New("email already taken")
)

// Account models a registered user of the platform.
type Account struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsDeleted reports whether the account carries a soft-delete marker.
func (a *Account) IsDeleted() bool {
	return a.DeletedAt != nil
}
