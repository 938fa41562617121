package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akshayraj-industries/website-backend/internal/auth"
	"github.com/akshayraj-industries/website-backend/middleware"
	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockInquiryStore struct {
	mock.Mock
}

func (m *mockInquiryStore) Insert(ctx context.Context, inq *types.Inquiry) (int64, error) {
	args := m.Called(ctx, inq)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInquiryStore) HasRecentPartnerInquiry(ctx context.Context, email string, window time.Duration) (bool, error) {
	args := m.Called(ctx, email, window)
	return args.Bool(0), args.Error(1)
}

func (m *mockInquiryStore) List(ctx context.Context, filter types.InquiryFilter) ([]*types.Inquiry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Inquiry), args.Error(1)
}

func (m *mockInquiryStore) GetByID(ctx context.Context, id int64) (*types.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Inquiry), args.Error(1)
}

func (m *mockInquiryStore) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInquiryStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) GetByUsername(ctx context.Context, username string) (*types.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AdminUser), args.Error(1)
}

func (m *mockAdminStore) TouchLastLogin(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newAdminRouter(admins store.AdminUserStore, inquiries store.InquiryStore) *gin.Engine {
	issuer := auth.NewTokenIssuer("test-secret-key-that-is-long-enough", time.Hour)
	h := NewAdminHandler(services.NewAuthService(admins, issuer), inquiries)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/v1/admin/login", h.Login)
	r.GET("/v1/admin/inquiries", h.ListInquiries)
	r.GET("/v1/admin/inquiries/:id", h.GetInquiry)
	r.PATCH("/v1/admin/inquiries/:id/read", h.MarkInquiryRead)
	r.DELETE("/v1/admin/inquiries/:id", h.DeleteInquiry)
	return r
}

func TestAdminLogin(t *testing.T) {
	admins := new(mockAdminStore)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	admins.On("GetByUsername", mock.Anything, "admin").Return(&types.AdminUser{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
	}, nil)
	admins.On("TouchLastLogin", mock.Anything, int64(1)).Return(nil)

	w := postJSON(newAdminRouter(admins, new(mockInquiryStore)), "/v1/admin/login", map[string]string{
		"username": "admin",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	admins := new(mockAdminStore)
	admins.On("GetByUsername", mock.Anything, "admin").Return(nil, store.ErrNotFound)

	w := postJSON(newAdminRouter(admins, new(mockInquiryStore)), "/v1/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListInquiriesFilter(t *testing.T) {
	inquiries := new(mockInquiryStore)
	unread := true
	inquiries.On("List", mock.Anything, types.InquiryFilter{
		Type:   types.InquiryTypeDealer,
		Unread: &unread,
		Limit:  10,
	}).Return([]*types.Inquiry{{ID: 1, Type: types.InquiryTypeDealer}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries?type=dealer&unread=true&limit=10", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), inquiries).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	inquiries.AssertExpectations(t)
}

func TestGetInquiryMarksRead(t *testing.T) {
	inquiries := new(mockInquiryStore)
	inquiries.On("GetByID", mock.Anything, int64(7)).Return(&types.Inquiry{
		ID:   7,
		Type: types.InquiryTypeContact,
	}, nil)
	inquiries.On("MarkRead", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries/7", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), inquiries).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"read":true`)
	inquiries.AssertExpectations(t)
}

func TestGetInquiryNotFound(t *testing.T) {
	inquiries := new(mockInquiryStore)
	inquiries.On("GetByID", mock.Anything, int64(99)).Return(nil, store.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries/99", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), inquiries).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkInquiryReadNotFound(t *testing.T) {
	inquiries := new(mockInquiryStore)
	inquiries.On("MarkRead", mock.Anything, int64(55)).Return(store.ErrNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/inquiries/55/read", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), inquiries).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteInquiry(t *testing.T) {
	inquiries := new(mockInquiryStore)
	inquiries.On("Delete", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/inquiries/7", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), inquiries).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	inquiries.AssertExpectations(t)
}

func TestInvalidIDRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/inquiries/abc", nil)
	w := httptest.NewRecorder()
	newAdminRouter(new(mockAdminStore), new(mockInquiryStore)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"success":false`))
}
