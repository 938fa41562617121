package handlers

import (
	"net/http"
	"strconv"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/middleware"
	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
)

// AdminHandler covers admin login and the inquiry management surface.
type AdminHandler struct {
	auth      *services.AuthService
	inquiries store.InquiryStore
}

func NewAdminHandler(auth *services.AuthService, inquiries store.InquiryStore) *AdminHandler {
	return &AdminHandler{auth: auth, inquiries: inquiries}
}

// Login handles POST /v1/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Username and password required", ""))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req, middleware.ClientIP(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Login successful", resp))
}

// ListInquiries handles GET /v1/admin/inquiries with optional type, unread,
// limit and offset query parameters.
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	filter := types.InquiryFilter{}

	switch c.Query("type") {
	case "contact":
		filter.Type = types.InquiryTypeContact
	case "dealer":
		filter.Type = types.InquiryTypeDealer
	case "distributor":
		filter.Type = types.InquiryTypeDistributor
	}
	if unread := c.Query("unread"); unread != "" {
		v := unread == "true" || unread == "1"
		filter.Unread = &v
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = offset
	}

	inquiries, err := h.inquiries.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Inquiries retrieved", inquiries))
}

// GetInquiry handles GET /v1/admin/inquiries/:id. Viewing an inquiry marks
// it read; the mark failing is not worth failing the read for.
func (h *AdminHandler) GetInquiry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inq, err := h.inquiries.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Inquiry", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	if !inq.Read {
		if err := h.inquiries.MarkRead(c.Request.Context(), id); err != nil {
			logger.GetLogger().Warnw("Failed to mark inquiry read", "error", err, "inquiry_id", id)
		} else {
			inq.Read = true
		}
	}

	c.JSON(http.StatusOK, types.NewSuccess("Inquiry retrieved", inq))
}

// MarkInquiryRead handles PATCH /v1/admin/inquiries/:id/read.
func (h *AdminHandler) MarkInquiryRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.inquiries.MarkRead(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Inquiry", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Inquiry marked as read", nil))
}

// DeleteInquiry handles DELETE /v1/admin/inquiries/:id.
func (h *AdminHandler) DeleteInquiry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.inquiries.Delete(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Inquiry", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	logger.GetLogger().Infow("Inquiry deleted",
		"inquiry_id", id,
		"admin", c.GetString(middleware.AdminUsernameKey))
	c.JSON(http.StatusOK, types.NewSuccess("Inquiry deleted", nil))
}
