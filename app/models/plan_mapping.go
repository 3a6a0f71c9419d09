package models

import "time"

// Local plan kinds recognized by plan mapping resolution.
const (
	PlanTypeHosting = "hosting"
	PlanTypeVPS     = "vps"
)

// ControlPanelPlanMapping maps a local package (hosting or VPS) to the plan id
// the control panel understands. At most one mapping may exist per
// (control_panel_id, local_plan_type, local_plan_id); resolution additionally
// requires IsActive.
//
// SortOrder is an explicit tier ranking used to decide upgrade vs. downgrade.
// When unset on either side of a plan change, direction falls back to numeric
// comparison of the external plan ids.
type ControlPanelPlanMapping struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ControlPanelID   uint      `gorm:"not null;index:ux_plan_mappings_local,unique,priority:1" json:"control_panel_id"`
	LocalPlanType    string    `gorm:"type:varchar(16);not null;index:ux_plan_mappings_local,unique,priority:2" json:"local_plan_type" validate:"oneof=hosting vps"`
	LocalPlanID      uint      `gorm:"not null;index:ux_plan_mappings_local,unique,priority:3" json:"local_plan_id"`
	ExternalPlanID   string    `gorm:"type:varchar(191);not null" json:"external_plan_id" validate:"required"`
	ExternalPlanName string    `gorm:"type:varchar(191);default:''" json:"external_plan_name"`
	SortOrder        *int      `gorm:"default:null" json:"sort_order,omitempty"`
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
