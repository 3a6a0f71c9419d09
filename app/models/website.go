package models

import (
	"time"

	"gorm.io/gorm"
)

// Website is a site hosted for a customer, bound to a domain. The external
// website id used to be recorded only inside the free-text Notes field;
// ExternalWebsiteID is the structured replacement, the note marker remains as
// a migration fallback for pre-existing records.
type Website struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CustomerID        uint           `gorm:"not null;index" json:"customer_id"`
	Customer          *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	HostingID         *uint          `gorm:"index" json:"hosting_id,omitempty"`
	Hosting           *Hosting       `gorm:"foreignKey:HostingID" json:"hosting,omitempty"`
	ControlPanelID    uint           `gorm:"not null;index" json:"control_panel_id"`
	Domain            string         `gorm:"type:varchar(255);not null;index" json:"domain" validate:"required,fqdn"`
	Status            string         `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
	ExternalAccountID string         `gorm:"type:varchar(191);default:''" json:"external_account_id"`
	ExternalWebsiteID string         `gorm:"type:varchar(191);default:''" json:"external_website_id"`
	SyncStatus        string         `gorm:"type:varchar(20);not null;default:'NOT_SYNCED';index" json:"sync_status"`
	LastSyncedAt      *time.Time     `gorm:"type:timestamp;default:null" json:"last_synced_at,omitempty"`
	Notes             string         `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
