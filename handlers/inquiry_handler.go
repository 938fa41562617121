package handlers

import (
	"net/http"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/middleware"
	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
)

// InquiryHandler exposes the public form endpoints.
type InquiryHandler struct {
	inquiries services.InquiryServiceInterface
}

func NewInquiryHandler(inquiries services.InquiryServiceInterface) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

func submissionMeta(c *gin.Context) services.SubmissionContext {
	return services.SubmissionContext{
		IP:        middleware.ClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}
}

// SubmitContact handles POST /v1/inquiries/contact. Accepts form-encoded or
// JSON bodies.
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	var sub types.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	inq, err := h.inquiries.SubmitContact(c.Request.Context(), &sub, submissionMeta(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess(
		"Your message has been sent successfully. We will get back to you soon.",
		types.ContactReceipt{
			MessageID:       inq.ID,
			ReferenceNumber: inq.ReferenceNumber(),
		}))
}

// SubmitPartner handles POST /v1/inquiries/dealer.
func (h *InquiryHandler) SubmitPartner(c *gin.Context) {
	var sub types.PartnerSubmission
	if err := c.ShouldBind(&sub); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	inq, err := h.inquiries.SubmitPartner(c.Request.Context(), &sub, submissionMeta(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess(
		"Your inquiry has been submitted successfully. Our team will contact you within 24-48 hours.",
		types.PartnerReceipt{
			InquiryID:       inq.ID,
			ReferenceNumber: inq.ReferenceNumber(),
			InquiryType:     string(inq.Type),
		}))
}
