package models

import "time"

// Supported control panel types.
const (
	ControlPanelTypeEnhance = "enhance"
)

// ControlPanel is a configured external hosting control panel instance.
// APIKey and OrgID may be left empty here and supplied via environment
// variables instead; internal/pkg/controlpanel resolves the effective
// configuration once per panel.
type ControlPanel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Type       string    `gorm:"type:varchar(32);not null;default:'enhance';index" json:"type" validate:"oneof=enhance"`
	BaseURL    string    `gorm:"type:varchar(255);not null" json:"base_url" validate:"required,url"`
	APIKey     string    `gorm:"type:text" json:"-"`
	OrgID      string    `gorm:"type:varchar(191);default:''" json:"org_id"`
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`
	ConfigJSON string    `gorm:"type:longtext" json:"config_json"`
	// Aggregated by the counter flusher, see internal/pkg/metrics/counter.
	SyncAttemptCount int64 `gorm:"not null;default:0" json:"sync_attempt_count"`
	SyncErrorCount   int64 `gorm:"not null;default:0" json:"sync_error_count"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
