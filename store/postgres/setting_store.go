package postgres

import (
	"context"
	"fmt"

	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
)

var _ store.SettingStore = (*SettingStore)(nil)

// SettingStore persists key/value site settings.
type SettingStore struct {
	db store.DB
}

// NewSettingStore creates a new SettingStore.
func NewSettingStore(db store.DB) *SettingStore {
	return &SettingStore{db: db}
}

// GetAll returns every setting row.
func (s *SettingStore) GetAll(ctx context.Context) ([]*types.Setting, error) {
	rows, err := s.db.Query(ctx,
		`SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	var out []*types.Setting
	for rows.Next() {
		st := &types.Setting{}
		if err := rows.Scan(&st.Key, &st.Value, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces one setting.
func (s *SettingStore) Upsert(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}
