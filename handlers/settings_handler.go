package handlers

import (
	"net/http"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/internal/sanitize"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
)

// publicSettingKeys are the settings exposed on the unauthenticated
// endpoint. Everything else stays admin-only.
var publicSettingKeys = map[string]bool{
	"site_title":       true,
	"site_description": true,
	"contact_email":    true,
	"contact_phone":    true,
	"contact_address":  true,
	"facebook_url":     true,
	"instagram_url":    true,
	"whatsapp_number":  true,
}

// SettingsHandler serves site settings: public read, admin write.
type SettingsHandler struct {
	settings store.SettingStore
}

func NewSettingsHandler(settings store.SettingStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// List handles GET /v1/settings, returning the public keys as a flat map for
// the website frontend.
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	kv := make(map[string]string)
	for _, s := range settings {
		if publicSettingKeys[s.Key] {
			kv[s.Key] = s.Value
		}
	}

	c.JSON(http.StatusOK, types.NewSuccess("Settings retrieved", kv))
}

// ListAll handles GET /v1/admin/settings, returning every setting row.
func (h *SettingsHandler) ListAll(c *gin.Context) {
	settings, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccess("Settings retrieved", settings))
}

// Upsert handles PUT /v1/admin/settings, writing every pair in the request.
func (h *SettingsHandler) Upsert(c *gin.Context) {
	var req types.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	if len(req.Settings) == 0 {
		_ = c.Error(errors.ValidationFailed("No settings provided", ""))
		return
	}

	for key, value := range req.Settings {
		cleanKey := sanitize.String(key, 100)
		if cleanKey == "" {
			_ = c.Error(errors.ValidationFailed("Setting key required", ""))
			return
		}
		if err := h.settings.Upsert(c.Request.Context(), cleanKey, sanitize.String(value, 2000)); err != nil {
			_ = c.Error(errors.NewDatabaseError(err))
			return
		}
	}

	c.JSON(http.StatusOK, types.NewSuccess("Settings saved", nil))
}
