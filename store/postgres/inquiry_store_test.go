package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func testInquiry() *types.Inquiry {
	return &types.Inquiry{
		Type:      types.InquiryTypeContact,
		Name:      "A",
		Email:     "a@b.com",
		Phone:     "+91 1234567890",
		Message:   "hello",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	}
}

func TestInquiryStore_Insert(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)
	inq := testInquiry()

	mock.ExpectQuery(`INSERT INTO inquiries`).
		WithArgs(
			"contact", inq.Name, inq.Email, inq.Phone,
			"", "", "", "", inq.Message, inq.IPAddress, inq.UserAgent,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := s.Insert(context.Background(), inq)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryStore_InsertPropagatesStorageError(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)

	mock.ExpectQuery(`INSERT INTO inquiries`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(errors.New("connection refused"))

	_, err := s.Insert(context.Background(), testInquiry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert inquiry")
}

func TestInquiryStore_HasRecentPartnerInquiry(t *testing.T) {
	t.Run("found within window", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewInquiryStore(mock)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("dealer@example.com", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		found, err := s.HasRecentPartnerInquiry(context.Background(), "dealer@example.com", 24*time.Hour)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("none within window", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewInquiryStore(mock)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("fresh@example.com", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		found, err := s.HasRecentPartnerInquiry(context.Background(), "fresh@example.com", 24*time.Hour)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestInquiryStore_GetByID(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+COALESCE\(company_name, ''\).+ FROM inquiries WHERE id`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "inquiry_type", "name", "email", "phone", "company_name",
			"city", "state", "business_experience", "message", "ip_address",
			"user_agent", "read", "created_at",
		}).AddRow(
			int64(7), "dealer", "B", "d@e.com", "123", "Acme",
			"Pune", "MH", "5 years", "hi", "203.0.113.7",
			"curl/8", false, created,
		))

	inq, err := s.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, types.InquiryTypeDealer, inq.Type)
	assert.Equal(t, "000007", inq.ReferenceNumber())
	assert.False(t, inq.Read)
}

func TestInquiryStore_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)

	mock.ExpectQuery(`SELECT .+ FROM inquiries WHERE id`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := s.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInquiryStore_MarkRead(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)

	mock.ExpectExec(`UPDATE inquiries SET read`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.MarkRead(context.Background(), 7))

	mock.ExpectExec(`UPDATE inquiries SET read`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, s.MarkRead(context.Background(), 99), store.ErrNotFound)
}

func TestInquiryStore_ListFiltersByTypeAndStatus(t *testing.T) {
	mock := newMockPool(t)
	s := NewInquiryStore(mock)
	unread := true
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM inquiries WHERE inquiry_type = \$1 AND read = \$2`).
		WithArgs("dealer", false, 50).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "inquiry_type", "name", "email", "phone", "company_name",
			"city", "state", "business_experience", "message", "ip_address",
			"user_agent", "read", "created_at",
		}).AddRow(
			int64(3), "dealer", "C", "c@d.com", "456", "Co",
			"Nashik", "MH", "2 years", "msg", "198.51.100.4",
			"Mozilla/5.0", false, created,
		))

	out, err := s.List(context.Background(), types.InquiryFilter{
		Type:   types.InquiryTypeDealer,
		Unread: &unread,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}
