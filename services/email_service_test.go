package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func emailTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			SiteName:  "Akshayraj Industries",
			SitePhone: "+91-9877421070",
		},
		Email: config.EmailConfig{
			FromAddress:        "noreply@akshayrajindustry.in",
			FromName:           "Akshayraj Industries",
			AdminAddress:       "admin@akshayrajindustry.in",
			SendTimeoutSeconds: 5,
		},
	}
}

func newTestEmailService(sender EmailSender) *EmailService {
	return NewEmailServiceWithClient(emailTestConfig(), sender, prometheus.NewRegistry())
}

func dealerInquiry() *types.Inquiry {
	return &types.Inquiry{
		ID:                 42,
		Type:               types.InquiryTypeDealer,
		Name:               "Ravi Kumar",
		Email:              "ravi@example.com",
		Phone:              "+91 9876543210",
		CompanyName:        "Kumar Traders",
		City:               "Pune",
		State:              "Maharashtra",
		BusinessExperience: "5 years in water storage retail",
		Message:            "Interested in dealership for Pune region",
	}
}

func TestNotifyAdminDealer(t *testing.T) {
	sender := new(mockEmailSender)
	svc := newTestEmailService(sender)

	var sent *resend.SendEmailRequest
	sender.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "email-1"}, nil)

	err := svc.NotifyAdmin(context.Background(), dealerInquiry())
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, []string{"admin@akshayrajindustry.in"}, sent.To)
	assert.Equal(t, "New Dealer Partnership Inquiry #000042 - Akshayraj Industries", sent.Subject)
	assert.Equal(t, "ravi@example.com", sent.ReplyTo)
	assert.Contains(t, sent.Html, "Kumar Traders")
	assert.Contains(t, sent.Html, "Maharashtra")
	assert.Contains(t, sent.Html, "#000042")
}

func TestNotifySubmitterContact(t *testing.T) {
	sender := new(mockEmailSender)
	svc := newTestEmailService(sender)

	inq := &types.Inquiry{
		ID:      7,
		Type:    types.InquiryTypeContact,
		Name:    "A",
		Email:   "a@b.com",
		Phone:   "+91 1234567890",
		Message: "hello",
	}

	var sent *resend.SendEmailRequest
	sender.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "email-2"}, nil)

	err := svc.NotifySubmitter(context.Background(), inq)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, []string{"a@b.com"}, sent.To)
	assert.Equal(t, "We received your message - Akshayraj Industries", sent.Subject)
	assert.Equal(t, "admin@akshayrajindustry.in", sent.ReplyTo)
	assert.Contains(t, sent.Html, "#000007")
}

func TestNotifySubmitterPartnerIncludesNextSteps(t *testing.T) {
	sender := new(mockEmailSender)
	svc := newTestEmailService(sender)

	var sent *resend.SendEmailRequest
	sender.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*resend.SendEmailRequest)
		}).
		Return(&resend.SendEmailResponse{Id: "email-3"}, nil)

	err := svc.NotifySubmitter(context.Background(), dealerInquiry())
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Contains(t, sent.Html, "Next Steps")
	assert.Contains(t, sent.Html, "24-48 business hours")
	assert.Contains(t, sent.Html, "+91-9877421070")
}

func TestSendFailureReturnsError(t *testing.T) {
	sender := new(mockEmailSender)
	svc := newTestEmailService(sender)

	sender.On("SendWithContext", mock.Anything, mock.Anything).
		Return(nil, errors.New("transport down"))

	err := svc.NotifyAdmin(context.Background(), dealerInquiry())
	assert.ErrorContains(t, err, "email send failed")
}
