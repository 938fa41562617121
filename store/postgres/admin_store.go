package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.AdminUserStore = (*AdminUserStore)(nil)

// AdminUserStore reads and updates admin accounts.
type AdminUserStore struct {
	db store.DB
}

// NewAdminUserStore creates a new AdminUserStore.
func NewAdminUserStore(db store.DB) *AdminUserStore {
	return &AdminUserStore{db: db}
}

// GetByUsername retrieves an admin account by username.
func (s *AdminUserStore) GetByUsername(ctx context.Context, username string) (*types.AdminUser, error) {
	u := &types.AdminUser{}
	err := s.db.QueryRow(ctx, `
		SELECT id, username, password_hash, last_login, created_at
		FROM admin_users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return u, nil
}

// TouchLastLogin records a successful login.
func (s *AdminUserStore) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx,
		`UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
