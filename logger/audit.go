package logger

import (
	"go.uber.org/zap"
)

// Security audit events mirror the legacy security.log entries: one line per
// security-relevant occurrence with the actor's IP and enough detail to
// reconstruct what was attempted. These are distinct from ordinary error
// logs and always emitted at Warn level so they survive production filtering.

// SecurityEvent names a security-relevant occurrence for the audit trail.
type SecurityEvent string

const (
	EventRateLimited        SecurityEvent = "RATE_LIMIT_EXCEEDED"
	EventDuplicateInquiry   SecurityEvent = "DUPLICATE_INQUIRY"
	EventValidationRejected SecurityEvent = "VALIDATION_REJECTED"
	EventInquirySubmitted   SecurityEvent = "INQUIRY_SUBMITTED"
	EventLoginFailed        SecurityEvent = "ADMIN_LOGIN_FAILED"
	EventLoginSucceeded     SecurityEvent = "ADMIN_LOGIN_OK"
	EventPipelineError      SecurityEvent = "PIPELINE_ERROR"
)

// LogSecurityEvent writes an audit entry. The ip and form identify the actor
// and surface; extra fields are appended as structured key/value pairs.
func LogSecurityEvent(event SecurityEvent, ip, form string, fields ...interface{}) {
	kv := []interface{}{
		zap.String("audit", "security"),
		zap.String("event", string(event)),
		zap.String("ip", ip),
		zap.String("form", form),
	}
	kv = append(kv, fields...)
	GetLogger().Warnw("security event", kv...)
}
