package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gdk/monitoring/internal/auth/model"
)

// UserFinder is the credential-store dependency of the authenticator.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// Authenticator checks submitted credentials against stored bcrypt hashes.
type Authenticator struct {
	users UserFinder
}

func NewAuthenticator(users UserFinder) *Authenticator {
	return &Authenticator{users: users}
}

// Authenticate returns the user for valid credentials. Unknown usernames
// and wrong passwords both return model.ErrInvalidCredentials; the bcrypt
// comparison runs in either case so a lookup miss is not cheaper than a
// hash mismatch.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if err == model.ErrUserNotFound {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	return user, nil
}

// HashPassword produces the stored form of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// dummyHash keeps the unknown-username path doing real bcrypt work.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-password"), bcrypt.DefaultCost)
	return h
}()
