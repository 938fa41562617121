// Package store defines the persistence interfaces consumed by the service
// layer. Implementations live in store/postgres.
package store

import (
	"context"
	"time"

	"github.com/akshayraj-industries/website-backend/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the stores use. Declared as an interface
// so tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// InquiryStore persists public form submissions.
type InquiryStore interface {
	// Insert writes the inquiry as a single atomic statement and returns the
	// store-assigned id. created_at and the unread status are set by the
	// database, not the caller.
	Insert(ctx context.Context, inq *types.Inquiry) (int64, error)
	// HasRecentPartnerInquiry reports whether any non-contact inquiry exists
	// for the email within the trailing window. The boundary is exclusive: a
	// row aged exactly `window` no longer counts.
	HasRecentPartnerInquiry(ctx context.Context, email string, window time.Duration) (bool, error)
	// List returns inquiries for the admin surface, newest first.
	List(ctx context.Context, filter types.InquiryFilter) ([]*types.Inquiry, error)
	GetByID(ctx context.Context, id int64) (*types.Inquiry, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ProductStore persists catalog entries.
type ProductStore interface {
	List(ctx context.Context, filter types.ProductFilter) ([]*types.Product, error)
	GetByID(ctx context.Context, id int64) (*types.Product, error)
	Create(ctx context.Context, p *types.Product) (int64, error)
	Update(ctx context.Context, id int64, update *types.ProductUpdate) error
	SetImage(ctx context.Context, id int64, ref types.ImageRef) error
	Delete(ctx context.Context, id int64) error
}

// SettingStore persists site settings.
type SettingStore interface {
	GetAll(ctx context.Context) ([]*types.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

// AdminUserStore reads and updates admin accounts.
type AdminUserStore interface {
	GetByUsername(ctx context.Context, username string) (*types.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
