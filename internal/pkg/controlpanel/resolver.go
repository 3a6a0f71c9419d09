package controlpanel

import (
	"errors"

	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// Resolver translates a local package into the control panel's plan id.
// Resolution is a pure lookup; it fails closed when no active mapping exists.
type Resolver struct {
	repo Repository
}

// NewResolver creates a plan mapping resolver.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the single active mapping for a local package. The full row
// is returned because plan-change direction also needs the mapping's tier.
func (r *Resolver) Resolve(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error) {
	if planType != models.PlanTypeHosting && planType != models.PlanTypeVPS {
		return nil, &ConfigError{Reason: "unknown local plan type " + planType}
	}
	if localPlanID == 0 {
		return nil, &ConfigError{Reason: "local plan id is missing"}
	}

	m, err := r.repo.FindActivePlanMapping(panelID, planType, localPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MappingNotFoundError{
				ControlPanelID: panelID,
				LocalPlanType:  planType,
				LocalPlanID:    localPlanID,
			}
		}
		return nil, err
	}
	return m, nil
}

// TierFor looks up the explicit tier of an external plan id, when one is
// configured. Used to decide upgrade vs. downgrade without trusting the
// panel's id assignment order.
func (r *Resolver) TierFor(panelID uint, planType, externalPlanID string) (int, bool) {
	m, err := r.repo.FindPlanMappingByExternalID(panelID, planType, externalPlanID)
	if err != nil || m.SortOrder == nil {
		return 0, false
	}
	return *m.SortOrder, true
}
