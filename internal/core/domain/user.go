package domain

import (
	"errors"
	"time"

	"github.com/accounthub/account-system/internal/auth"
)

// User models an account held by the user service.
type User struct {
	ID           int32         `json:"id"`
	Username     string        `json:"username"`
	PasswordHash string        `json:"-"`
	Identity     auth.Identity `json:"identity"`
	// Open reports whether the account may sign in. Operators close an
	// account instead of deleting it.
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrAccountClosed      = errors.New("account is closed, contact an administrator")
)
