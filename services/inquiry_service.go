package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/internal/sanitize"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
)

// partnerDuplicateWindow is how long a partner inquiry blocks a repeat from
// the same email address.
const partnerDuplicateWindow = 24 * time.Hour

// SubmissionContext carries the request metadata recorded alongside each
// inquiry. IP is the resolved client address, already unwrapped from any
// proxy headers by the transport layer.
type SubmissionContext struct {
	IP        string
	UserAgent string
}

// InquiryServiceInterface is the intake pipeline consumed by the handlers.
type InquiryServiceInterface interface {
	SubmitContact(ctx context.Context, sub *types.ContactSubmission, meta SubmissionContext) (*types.Inquiry, error)
	SubmitPartner(ctx context.Context, sub *types.PartnerSubmission, meta SubmissionContext) (*types.Inquiry, error)
}

// InquiryService runs the intake pipeline: sanitize, validate, rate-limit,
// duplicate-check (partner forms only), persist, then notify. Persistence is
// the commit point; notification failures never fail the request.
type InquiryService struct {
	inquiries store.InquiryStore
	limiter   RateLimiterInterface
	notifier  NotifierInterface
	limits    config.RateLimitConfig
}

func NewInquiryService(inquiries store.InquiryStore, limiter RateLimiterInterface, notifier NotifierInterface, limits config.RateLimitConfig) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		limiter:   limiter,
		notifier:  notifier,
		limits:    limits,
	}
}

var _ InquiryServiceInterface = (*InquiryService)(nil)

// SubmitContact processes a contact form submission and returns the stored
// inquiry on success.
func (s *InquiryService) SubmitContact(ctx context.Context, sub *types.ContactSubmission, meta SubmissionContext) (*types.Inquiry, error) {
	inq := &types.Inquiry{
		Type:      types.InquiryTypeContact,
		Name:      sanitize.String(sub.Name, types.MaxNameLen),
		Email:     sanitize.Email(sub.Email),
		Phone:     sanitize.Phone(sub.Phone),
		Message:   sanitize.String(sub.Message, types.MaxContactMessageLen),
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	}

	var missing []string
	if inq.Name == "" {
		missing = append(missing, "name")
	}
	if inq.Email == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(inq.Phone) == "" {
		missing = append(missing, "phone")
	}
	if inq.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		logger.LogSecurityEvent(logger.EventValidationRejected, meta.IP, "contact",
			"fields", strings.Join(missing, ","))
		return nil, errors.ValidationFailed(
			"Please fill in all required fields correctly",
			fmt.Sprintf("invalid or missing: %s", strings.Join(missing, ", ")))
	}

	if err := s.enforceLimit(ctx, "contact_form:"+meta.IP, s.limits.ContactLimit,
		time.Duration(s.limits.ContactWindowSeconds)*time.Second, meta.IP, "contact"); err != nil {
		return nil, err
	}

	return s.persistAndNotify(ctx, inq, meta, "contact")
}

// SubmitPartner processes a dealer/distributor form submission. An unknown
// inquiry_type value is coerced to dealer rather than rejected.
func (s *InquiryService) SubmitPartner(ctx context.Context, sub *types.PartnerSubmission, meta SubmissionContext) (*types.Inquiry, error) {
	inqType := types.InquiryTypeDealer
	if sanitize.String(sub.InquiryType, types.MaxNameLen) == string(types.InquiryTypeDistributor) {
		inqType = types.InquiryTypeDistributor
	}

	inq := &types.Inquiry{
		Type:               inqType,
		Name:               sanitize.String(sub.FullName, types.MaxNameLen),
		CompanyName:        sanitize.String(sub.CompanyName, types.MaxCompanyLen),
		Email:              sanitize.Email(sub.Email),
		Phone:              sanitize.Phone(sub.Phone),
		City:               sanitize.String(sub.City, types.MaxCityLen),
		State:              sanitize.String(sub.State, types.MaxStateLen),
		BusinessExperience: sanitize.String(sub.BusinessExperience, types.MaxExperienceLen),
		Message:            sanitize.String(sub.Message, types.MaxPartnerMessageLen),
		IPAddress:          meta.IP,
		UserAgent:          meta.UserAgent,
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"full_name", inq.Name},
		{"company_name", inq.CompanyName},
		{"email", inq.Email},
		{"phone", strings.TrimSpace(inq.Phone)},
		{"city", inq.City},
		{"state", inq.State},
		{"business_experience", inq.BusinessExperience},
		{"message", inq.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		logger.LogSecurityEvent(logger.EventValidationRejected, meta.IP, string(inqType),
			"fields", strings.Join(missing, ","))
		return nil, errors.ValidationFailed(
			"Please fill in all required fields correctly",
			fmt.Sprintf("invalid or missing: %s", strings.Join(missing, ", ")))
	}

	if err := s.enforceLimit(ctx, "dealer_inquiry:"+meta.IP, s.limits.DealerLimit,
		time.Duration(s.limits.DealerWindowSeconds)*time.Second, meta.IP, string(inqType)); err != nil {
		return nil, err
	}

	exists, err := s.inquiries.HasRecentPartnerInquiry(ctx, inq.Email, partnerDuplicateWindow)
	if err != nil {
		logger.LogSecurityEvent(logger.EventPipelineError, meta.IP, string(inqType), "stage", "duplicate_check")
		return nil, errors.NewDatabaseError(err)
	}
	if exists {
		logger.LogSecurityEvent(logger.EventDuplicateInquiry, meta.IP, string(inqType),
			"email", logger.MaskEmail(inq.Email))
		return nil, errors.DuplicateSubmission(
			"You have already submitted an inquiry recently. Our team will contact you soon.")
	}

	return s.persistAndNotify(ctx, inq, meta, string(inqType))
}

// enforceLimit asks the rate limiter for a slot. A limiter backend failure
// is logged and the submission allowed through; availability of the public
// forms wins over strict enforcement.
func (s *InquiryService) enforceLimit(ctx context.Context, key string, limit int, window time.Duration, ip, form string) error {
	allowed, retryAfter, err := s.limiter.CheckLimit(ctx, key, limit, window)
	if err != nil {
		logger.GetLogger().Warnw("Rate limiter unavailable, allowing request",
			"error", err, "key", key)
		return nil
	}
	if !allowed {
		logger.LogSecurityEvent(logger.EventRateLimited, ip, form,
			"retry_after_seconds", int(math.Ceil(retryAfter.Seconds())))
		return errors.RateLimitExceeded(
			"Too many submissions. Please try again later.",
			int(math.Ceil(retryAfter.Seconds())))
	}
	return nil
}

func (s *InquiryService) persistAndNotify(ctx context.Context, inq *types.Inquiry, meta SubmissionContext, form string) (*types.Inquiry, error) {
	log := logger.GetLogger()

	id, err := s.inquiries.Insert(ctx, inq)
	if err != nil {
		logger.LogSecurityEvent(logger.EventPipelineError, meta.IP, form, "stage", "insert")
		return nil, errors.NewDatabaseError(err)
	}
	inq.ID = id

	if err := s.notifier.NotifyAdmin(ctx, inq); err != nil {
		log.Warnw("Admin notification failed",
			"error", err, "inquiry_id", id, "type", inq.Type)
	}
	if err := s.notifier.NotifySubmitter(ctx, inq); err != nil {
		log.Warnw("Submitter confirmation failed",
			"error", err, "inquiry_id", id, "type", inq.Type)
	}

	logger.LogSecurityEvent(logger.EventInquirySubmitted, meta.IP, form,
		"inquiry_id", id, "reference", inq.ReferenceNumber())
	return inq, nil
}
