// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/jackc/pgx/v5"
)

// Ensure InquiryStore implements store.InquiryStore.
var _ store.InquiryStore = (*InquiryStore)(nil)

// InquiryStore persists form submissions in the inquiries table.
type InquiryStore struct {
	db store.DB
}

// NewInquiryStore creates a new InquiryStore.
func NewInquiryStore(db store.DB) *InquiryStore {
	return &InquiryStore{db: db}
}

// Insert writes the inquiry and returns the generated id. created_at and the
// unread default come from the table definition; provenance fields are stored
// verbatim.
func (s *InquiryStore) Insert(ctx context.Context, inq *types.Inquiry) (int64, error) {
	query := `
		INSERT INTO inquiries
			(inquiry_type, name, email, phone, company_name, city, state,
			 business_experience, message, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := s.db.QueryRow(ctx, query,
		string(inq.Type),
		inq.Name,
		inq.Email,
		inq.Phone,
		inq.CompanyName,
		inq.City,
		inq.State,
		inq.BusinessExperience,
		inq.Message,
		inq.IPAddress,
		inq.UserAgent,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return id, nil
}

// HasRecentPartnerInquiry reports whether a non-contact inquiry exists for
// the email newer than now-window. The comparison is strictly greater, so a
// row aged exactly `window` no longer blocks a new submission.
func (s *InquiryStore) HasRecentPartnerInquiry(ctx context.Context, email string, window time.Duration) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM inquiries
			WHERE inquiry_type <> 'contact' AND email = $1 AND created_at > $2
		)`

	cutoff := time.Now().UTC().Add(-window)
	var exists bool
	if err := s.db.QueryRow(ctx, query, email, cutoff).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent inquiries: %w", err)
	}
	return exists, nil
}

// Optional columns are nullable in the table; COALESCE keeps the scan
// targets plain strings.
const inquiryColumns = `id, inquiry_type, name, email, phone,
	COALESCE(company_name, ''), COALESCE(city, ''), COALESCE(state, ''),
	COALESCE(business_experience, ''), message, COALESCE(ip_address, ''),
	COALESCE(user_agent, ''), read, created_at`

func scanInquiry(row pgx.Row) (*types.Inquiry, error) {
	inq := &types.Inquiry{}
	var typ string
	err := row.Scan(
		&inq.ID,
		&typ,
		&inq.Name,
		&inq.Email,
		&inq.Phone,
		&inq.CompanyName,
		&inq.City,
		&inq.State,
		&inq.BusinessExperience,
		&inq.Message,
		&inq.IPAddress,
		&inq.UserAgent,
		&inq.Read,
		&inq.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inq.Type = types.InquiryType(typ)
	return inq, nil
}

// List returns inquiries for the admin surface, newest first.
func (s *InquiryStore) List(ctx context.Context, filter types.InquiryFilter) ([]*types.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	var conds []string
	var args []any

	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, fmt.Sprintf("inquiry_type = $%d", len(args)))
	}
	if filter.Unread != nil {
		args = append(args, !*filter.Unread)
		conds = append(conds, fmt.Sprintf("read = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var out []*types.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}

// GetByID retrieves a single inquiry.
func (s *InquiryStore) GetByID(ctx context.Context, id int64) (*types.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	inq, err := scanInquiry(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return inq, nil
}

// MarkRead flags an inquiry as read.
func (s *InquiryStore) MarkRead(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE inquiries SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark inquiry read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes an inquiry. Administrative action only; the intake pipeline
// never deletes.
func (s *InquiryStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
