package models

import "time"

// HostingPackage is a local webhosting product definition. The mapping to a
// control-panel plan lives in ControlPanelPlanMapping, never here.
type HostingPackage struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	DiskSpaceMB      int       `gorm:"not null;default:0" json:"disk_space_mb"`
	TrafficGB        int       `gorm:"not null;default:0" json:"traffic_gb"`
	Databases        int       `gorm:"not null;default:0" json:"databases"`
	EmailAccounts    int       `gorm:"not null;default:0" json:"email_accounts"`
	Subdomains       int       `gorm:"not null;default:0" json:"subdomains"`
	PriceMonthlyCent int       `gorm:"not null;default:0" json:"price_monthly_cent"`
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
