package model

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a stored identity. Password hashes are bcrypt and never leave
// the auth packages.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

var (
	// ErrUserNotFound is returned by the credential store for unknown usernames.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures leak nothing about which part was wrong.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken covers malformed, expired and signature-invalid tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
