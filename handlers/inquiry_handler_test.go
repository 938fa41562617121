package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/middleware"
	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

type mockInquiryService struct {
	mock.Mock
}

func (m *mockInquiryService) SubmitContact(ctx context.Context, sub *types.ContactSubmission, meta services.SubmissionContext) (*types.Inquiry, error) {
	args := m.Called(ctx, sub, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Inquiry), args.Error(1)
}

func (m *mockInquiryService) SubmitPartner(ctx context.Context, sub *types.PartnerSubmission, meta services.SubmissionContext) (*types.Inquiry, error) {
	args := m.Called(ctx, sub, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Inquiry), args.Error(1)
}

func newInquiryRouter(svc services.InquiryServiceInterface) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewInquiryHandler(svc)
	r.POST("/v1/inquiries/contact", h.SubmitContact)
	r.POST("/v1/inquiries/dealer", h.SubmitPartner)
	return r
}

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactJSON(t *testing.T) {
	svc := new(mockInquiryService)
	svc.On("SubmitContact", mock.Anything, mock.MatchedBy(func(sub *types.ContactSubmission) bool {
		return sub.Name == "Ravi" && sub.Email == "ravi@example.com"
	}), mock.Anything).Return(&types.Inquiry{
		ID:   42,
		Type: types.InquiryTypeContact,
	}, nil)

	w := postJSON(newInquiryRouter(svc), "/v1/inquiries/contact", map[string]string{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"phone":   "+91 9876543210",
		"message": "hello",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    types.ContactReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.Data.MessageID)
	assert.Equal(t, "000042", resp.Data.ReferenceNumber)
}

func TestSubmitContactFormEncoded(t *testing.T) {
	svc := new(mockInquiryService)
	svc.On("SubmitContact", mock.Anything, mock.MatchedBy(func(sub *types.ContactSubmission) bool {
		return sub.Name == "Ravi Kumar" && sub.Message == "need tanks"
	}), mock.Anything).Return(&types.Inquiry{ID: 7, Type: types.InquiryTypeContact}, nil)

	form := url.Values{}
	form.Set("name", "Ravi Kumar")
	form.Set("email", "ravi@example.com")
	form.Set("phone", "+91 9876543210")
	form.Set("message", "need tanks")

	req := httptest.NewRequest(http.MethodPost, "/v1/inquiries/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	newInquiryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSubmitContactRateLimitedEnvelope(t *testing.T) {
	svc := new(mockInquiryService)
	svc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.RateLimitExceeded("Too many submissions. Please try again later.", 1800))

	w := postJSON(newInquiryRouter(svc), "/v1/inquiries/contact", map[string]string{"name": "x"})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1800", w.Header().Get("Retry-After"))

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Too many submissions. Please try again later.", resp.Error)
}

func TestSubmitPartnerSuccessEnvelope(t *testing.T) {
	svc := new(mockInquiryService)
	svc.On("SubmitPartner", mock.Anything, mock.Anything, mock.Anything).
		Return(&types.Inquiry{ID: 101, Type: types.InquiryTypeDistributor}, nil)

	w := postJSON(newInquiryRouter(svc), "/v1/inquiries/dealer", map[string]string{
		"inquiry_type": "distributor",
		"full_name":    "Ravi",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    types.PartnerReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(101), resp.Data.InquiryID)
	assert.Equal(t, "000101", resp.Data.ReferenceNumber)
	assert.Equal(t, "distributor", resp.Data.InquiryType)
}

func TestSubmitPartnerDuplicateEnvelope(t *testing.T) {
	svc := new(mockInquiryService)
	svc.On("SubmitPartner", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.DuplicateSubmission("You have already submitted an inquiry recently. Our team will contact you soon."))

	w := postJSON(newInquiryRouter(svc), "/v1/inquiries/dealer", map[string]string{"full_name": "x"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestSubmissionMetaUsesForwardedIP(t *testing.T) {
	svc := new(mockInquiryService)
	var gotMeta services.SubmissionContext
	svc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotMeta = args.Get(2).(services.SubmissionContext)
		}).
		Return(&types.Inquiry{ID: 1, Type: types.InquiryTypeContact}, nil)

	data, _ := json.Marshal(map[string]string{"name": "x"})
	req := httptest.NewRequest(http.MethodPost, "/v1/inquiries/contact", strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "test-browser")
	w := httptest.NewRecorder()
	newInquiryRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.7", gotMeta.IP)
	assert.Equal(t, "test-browser", gotMeta.UserAgent)
}
