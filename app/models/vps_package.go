package models

import "time"

// VPSPackage is a local VPS product definition.
type VPSPackage struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Cores            int       `gorm:"not null;default:1" json:"cores"`
	MemoryMB         int       `gorm:"not null;default:0" json:"memory_mb"`
	DiskGB           int       `gorm:"not null;default:0" json:"disk_gb"`
	TrafficTB        int       `gorm:"not null;default:0" json:"traffic_tb"`
	PriceMonthlyCent int       `gorm:"not null;default:0" json:"price_monthly_cent"`
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
