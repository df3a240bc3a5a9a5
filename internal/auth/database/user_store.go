package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gdk/monitoring/internal/auth/model"
	db "github.com/gdk/monitoring/internal/database"
)

// UserStore is the credential store. Lookup by username is the only query
// shape the rest of the system needs; users are never updated or deleted
// through the API.
type UserStore struct {
	DB *db.Database
}

func NewUserStore(database *db.Database) *UserStore {
	return &UserStore{DB: database}
}

// FindByUsername returns the stored user or model.ErrUserNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT id, username, password_hash, role FROM users WHERE username = $1`

	row := s.DB.QueryRowContext(ctx, q, username)
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &u, nil
}

// EnsureAdmin creates the default admin account when missing. The insert is
// idempotent so every startup can call it unconditionally.
func (s *UserStore) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	const q = `
	INSERT INTO users (username, password_hash, role)
	VALUES ($1, $2, $3)
	ON CONFLICT (username) DO NOTHING
	`
	if _, err := s.DB.ExecContext(ctx, q, username, passwordHash, model.RoleAdmin); err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}
	return nil
}
