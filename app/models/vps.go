package models

import (
	"time"

	"gorm.io/gorm"
)

// VPS is a booked virtual server instance for a customer.
type VPS struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	CustomerID        uint           `gorm:"not null;index" json:"customer_id"`
	Customer          *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	VPSPackageID      uint           `gorm:"not null;index" json:"vps_package_id"`
	VPSPackage        *VPSPackage    `gorm:"foreignKey:VPSPackageID" json:"vps_package,omitempty"`
	ControlPanelID    uint           `gorm:"not null;index" json:"control_panel_id"`
	Hostname          string         `gorm:"type:varchar(255);not null" json:"hostname" validate:"required,hostname"`
	IPv4              string         `gorm:"type:varchar(15);default:''" json:"ipv4"`
	IPv6              string         `gorm:"type:varchar(45);default:''" json:"ipv6"`
	Status            string         `gorm:"type:varchar(32);not null;default:'active'" json:"status"`
	ExternalAccountID string         `gorm:"type:varchar(191);default:''" json:"external_account_id"`
	SyncStatus        string         `gorm:"type:varchar(20);not null;default:'NOT_SYNCED';index" json:"sync_status"`
	SyncMetadata      string         `gorm:"type:longtext" json:"-"`
	LastSyncedAt      *time.Time     `gorm:"type:timestamp;default:null" json:"last_synced_at,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// Metadata returns the decoded sync metadata map.
func (v *VPS) Metadata() map[string]string {
	return DecodeSyncMetadata(v.SyncMetadata)
}
