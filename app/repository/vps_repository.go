package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// vpsRepository implements the VPSRepository interface
type vpsRepository struct {
	db *gorm.DB
}

// NewVPSRepository creates a new VPS repository instance
func NewVPSRepository(db *gorm.DB) VPSRepository {
	return &vpsRepository{db: db}
}

// Create creates a new VPS instance in the database
func (r *vpsRepository) Create(vps *models.VPS) error {
	return r.db.Create(vps).Error
}

// GetByID retrieves a VPS instance with its customer and package preloaded
func (r *vpsRepository) GetByID(id uint) (*models.VPS, error) {
	var vps models.VPS
	err := r.db.Preload("Customer").Preload("VPSPackage").First(&vps, id).Error
	if err != nil {
		return nil, err
	}
	return &vps, nil
}

// GetByCustomerID retrieves all VPS instances of a customer
func (r *vpsRepository) GetByCustomerID(customerID uint) ([]models.VPS, error) {
	var servers []models.VPS
	err := r.db.Preload("VPSPackage").
		Where("customer_id = ?", customerID).Find(&servers).Error
	return servers, err
}

// Update updates an existing VPS instance in the database
func (r *vpsRepository) Update(vps *models.VPS) error {
	return r.db.Save(vps).Error
}

// Delete soft deletes a VPS instance by its ID
func (r *vpsRepository) Delete(id uint) error {
	return r.db.Delete(&models.VPS{}, id).Error
}

// List retrieves a paginated list of VPS instances
func (r *vpsRepository) List(offset, limit int) ([]models.VPS, error) {
	var servers []models.VPS
	err := r.db.Preload("Customer").Preload("VPSPackage").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&servers).Error
	return servers, err
}

// Count returns the total number of VPS instances
func (r *vpsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.VPS{}).Count(&count).Error
	return count, err
}

// ListBySyncStatus retrieves VPS instances in the given sync state
func (r *vpsRepository) ListBySyncStatus(status string) ([]models.VPS, error) {
	var servers []models.VPS
	err := r.db.Where("sync_status = ?", status).Find(&servers).Error
	return servers, err
}
