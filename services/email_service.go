package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

// NotifierInterface is the notification port of the inquiry pipeline. Both
// sends are best-effort from the orchestrator's perspective: a returned error
// is logged by the caller but never fails the request, since the submission
// is already persisted.
type NotifierInterface interface {
	NotifyAdmin(ctx context.Context, inq *types.Inquiry) error
	NotifySubmitter(ctx context.Context, inq *types.Inquiry) error
}

// EmailSender is the subset of the Resend client used by EmailService,
// extracted so tests can substitute a mock.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends inquiry notifications through Resend.
type EmailService struct {
	cfg       *config.EmailConfig
	siteName  string
	sitePhone string
	client    EmailSender
	metrics   *EmailMetrics
	timeout   time.Duration
}

// NewEmailService creates an EmailService with a real Resend client and
// metrics registered on the default Prometheus registerer.
func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.Email.ResendAPIKey)
	return NewEmailServiceWithClient(cfg, client.Emails, prometheus.DefaultRegisterer)
}

// NewEmailServiceWithClient wires an explicit sender and metrics registry.
func NewEmailServiceWithClient(cfg *config.Config, client EmailSender, reg prometheus.Registerer) *EmailService {
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "website_email_send_duration_seconds",
			Help:    "Time taken to send notification emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "website_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "website_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}
	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	timeout := time.Duration(cfg.Email.SendTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &EmailService{
		cfg:       &cfg.Email,
		siteName:  cfg.Server.SiteName,
		sitePhone: cfg.Server.SitePhone,
		client:    client,
		metrics:   metrics,
		timeout:   timeout,
	}
}

// NotifyAdmin sends the staff notification for a new inquiry. The template
// depends on the inquiry type; reply-to is the submitter so staff can answer
// directly.
func (s *EmailService) NotifyAdmin(ctx context.Context, inq *types.Inquiry) error {
	tmpl := adminContactTemplate
	subject := fmt.Sprintf("New Contact Message #%s - %s", inq.ReferenceNumber(), s.siteName)
	if inq.IsPartner() {
		tmpl = adminPartnerTemplate
		subject = fmt.Sprintf("New %s Partnership Inquiry #%s - %s",
			titleCase(string(inq.Type)), inq.ReferenceNumber(), s.siteName)
	}

	return s.send(ctx, tmpl, types.EmailData{
		To:           s.cfg.AdminAddress,
		Subject:      subject,
		ReplyTo:      inq.Email,
		TemplateData: s.templateData(inq),
	})
}

// NotifySubmitter sends the confirmation email with the reference number and
// next steps.
func (s *EmailService) NotifySubmitter(ctx context.Context, inq *types.Inquiry) error {
	tmpl := confirmContactTemplate
	subject := fmt.Sprintf("We received your message - %s", s.siteName)
	if inq.IsPartner() {
		tmpl = confirmPartnerTemplate
		subject = fmt.Sprintf("Partnership Inquiry Confirmation - %s", s.siteName)
	}

	return s.send(ctx, tmpl, types.EmailData{
		To:           inq.Email,
		Subject:      subject,
		ReplyTo:      s.cfg.AdminAddress,
		TemplateData: s.templateData(inq),
	})
}

func (s *EmailService) templateData(inq *types.Inquiry) map[string]interface{} {
	return map[string]interface{}{
		"SiteName":   s.siteName,
		"SitePhone":  s.sitePhone,
		"AdminEmail": s.cfg.AdminAddress,
		"Reference":  inq.ReferenceNumber(),
		"TypeLabel":  titleCase(string(inq.Type)),
		"Inquiry":    inq,
	}
}

func (s *EmailService) send(ctx context.Context, tmpl *template.Template, data types.EmailData) error {
	log := logger.GetLogger()
	startTime := time.Now()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, data.TemplateData); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err, "template", tmpl.Name())
		return fmt.Errorf("failed to execute template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromAddress),
		To:      []string{data.To},
		Subject: data.Subject,
		Html:    htmlContent.String(),
	}
	if data.ReplyTo != "" {
		params.ReplyTo = data.ReplyTo
	}

	// A slow transport must not stall the response; abandon after timeout.
	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.SendWithContext(sendCtx, params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(data.To),
			"subject", data.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent",
		"to", logger.MaskEmail(data.To),
		"subject", data.Subject)
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
