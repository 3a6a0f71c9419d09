package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// controlPanelRepository implements the ControlPanelRepository interface
type controlPanelRepository struct {
	db *gorm.DB
}

// NewControlPanelRepository creates a new control panel repository instance
func NewControlPanelRepository(db *gorm.DB) ControlPanelRepository {
	return &controlPanelRepository{db: db}
}

// Create creates a new control panel configuration
func (r *controlPanelRepository) Create(panel *models.ControlPanel) error {
	return r.db.Create(panel).Error
}

// GetByID retrieves a control panel by its ID
func (r *controlPanelRepository) GetByID(id uint) (*models.ControlPanel, error) {
	var panel models.ControlPanel
	err := r.db.First(&panel, id).Error
	if err != nil {
		return nil, err
	}
	return &panel, nil
}

// GetActive retrieves all active control panels
func (r *controlPanelRepository) GetActive() ([]models.ControlPanel, error) {
	var panels []models.ControlPanel
	err := r.db.Where("is_active = ?", true).Find(&panels).Error
	return panels, err
}

// GetAll retrieves all configured control panels
func (r *controlPanelRepository) GetAll() ([]models.ControlPanel, error) {
	var panels []models.ControlPanel
	err := r.db.Order("id ASC").Find(&panels).Error
	return panels, err
}

// Update updates an existing control panel configuration
func (r *controlPanelRepository) Update(panel *models.ControlPanel) error {
	return r.db.Save(panel).Error
}

// Delete removes a control panel configuration
func (r *controlPanelRepository) Delete(id uint) error {
	return r.db.Delete(&models.ControlPanel{}, id).Error
}
