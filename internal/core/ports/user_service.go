package ports

import "context"

// UserService is the account backend capability exposed over RPC.
type UserService interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	// Register creates an account and returns a human-readable result.
	Register(ctx context.Context, username, password string) (string, error)
	// Exists reports whether the username is already taken.
	Exists(ctx context.Context, username string) (bool, error)
}
