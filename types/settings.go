package types

import "time"

// Setting is a single key/value site setting row (site title, contact
// details, social links). Public reads expose only whitelisted keys.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsUpdate is the admin request body for upserting settings.
type SettingsUpdate struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
