package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// planMappingRepository implements the PlanMappingRepository interface
type planMappingRepository struct {
	db *gorm.DB
}

// NewPlanMappingRepository creates a new plan mapping repository instance
func NewPlanMappingRepository(db *gorm.DB) PlanMappingRepository {
	return &planMappingRepository{db: db}
}

// Create creates a new plan mapping
func (r *planMappingRepository) Create(mapping *models.ControlPanelPlanMapping) error {
	return r.db.Create(mapping).Error
}

// GetByID retrieves a plan mapping by its ID
func (r *planMappingRepository) GetByID(id uint) (*models.ControlPanelPlanMapping, error) {
	var mapping models.ControlPanelPlanMapping
	err := r.db.First(&mapping, id).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetByPanelID retrieves all plan mappings of a control panel
func (r *planMappingRepository) GetByPanelID(panelID uint) ([]models.ControlPanelPlanMapping, error) {
	var mappings []models.ControlPanelPlanMapping
	err := r.db.Where("control_panel_id = ?", panelID).
		Order("local_plan_type ASC, local_plan_id ASC").Find(&mappings).Error
	return mappings, err
}

// FindLocal retrieves the mapping for a local plan regardless of active state
func (r *planMappingRepository) FindLocal(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error) {
	var mapping models.ControlPanelPlanMapping
	err := r.db.Where("control_panel_id = ? AND local_plan_type = ? AND local_plan_id = ?",
		panelID, planType, localPlanID).First(&mapping).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// Update updates an existing plan mapping
func (r *planMappingRepository) Update(mapping *models.ControlPanelPlanMapping) error {
	return r.db.Save(mapping).Error
}

// Delete removes a plan mapping
func (r *planMappingRepository) Delete(id uint) error {
	return r.db.Delete(&models.ControlPanelPlanMapping{}, id).Error
}

// LocalMappingExists reports whether another mapping already claims the local plan
func (r *planMappingRepository) LocalMappingExists(panelID uint, planType string, localPlanID uint, exceptID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ControlPanelPlanMapping{}).
		Where("control_panel_id = ? AND local_plan_type = ? AND local_plan_id = ? AND id <> ?",
			panelID, planType, localPlanID, exceptID).
		Count(&count).Error
	return count > 0, err
}
