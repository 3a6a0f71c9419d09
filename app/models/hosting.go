package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ServiceStatusActive     = "active"
	ServiceStatusSuspended  = "suspended"
	ServiceStatusTerminated = "terminated"
)

// Hosting is a booked webhosting instance for a customer. Sync columns are
// mutated only by the control-panel syncers.
type Hosting struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CustomerID        uint            `gorm:"not null;index" json:"customer_id"`
	Customer          *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	HostingPackageID  uint            `gorm:"not null;index" json:"hosting_package_id"`
	HostingPackage    *HostingPackage `gorm:"foreignKey:HostingPackageID" json:"hosting_package,omitempty"`
	ControlPanelID    uint            `gorm:"not null;index" json:"control_panel_id"`
	Domain            string          `gorm:"type:varchar(255);not null;index" json:"domain" validate:"required,fqdn"`
	Status            string          `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
	ExternalAccountID string          `gorm:"type:varchar(191);default:''" json:"external_account_id"`
	SyncStatus        string          `gorm:"type:varchar(20);not null;default:'NOT_SYNCED';index" json:"sync_status"`
	SyncMetadata      string          `gorm:"type:longtext" json:"-"`
	LastSyncedAt      *time.Time      `gorm:"type:timestamp;default:null" json:"last_synced_at,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Metadata returns the decoded sync metadata map.
func (h *Hosting) Metadata() map[string]string {
	return DecodeSyncMetadata(h.SyncMetadata)
}
