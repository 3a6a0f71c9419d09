package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// hostingRepository implements the HostingRepository interface
type hostingRepository struct {
	db *gorm.DB
}

// NewHostingRepository creates a new hosting repository instance
func NewHostingRepository(db *gorm.DB) HostingRepository {
	return &hostingRepository{db: db}
}

// Create creates a new hosting instance in the database
func (r *hostingRepository) Create(hosting *models.Hosting) error {
	return r.db.Create(hosting).Error
}

// GetByID retrieves a hosting instance with its customer and package preloaded
func (r *hostingRepository) GetByID(id uint) (*models.Hosting, error) {
	var hosting models.Hosting
	err := r.db.Preload("Customer").Preload("HostingPackage").First(&hosting, id).Error
	if err != nil {
		return nil, err
	}
	return &hosting, nil
}

// GetByCustomerID retrieves all hosting instances of a customer
func (r *hostingRepository) GetByCustomerID(customerID uint) ([]models.Hosting, error) {
	var hostings []models.Hosting
	err := r.db.Preload("HostingPackage").
		Where("customer_id = ?", customerID).Find(&hostings).Error
	return hostings, err
}

// Update updates an existing hosting instance in the database
func (r *hostingRepository) Update(hosting *models.Hosting) error {
	return r.db.Save(hosting).Error
}

// Delete soft deletes a hosting instance by its ID
func (r *hostingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hosting{}, id).Error
}

// List retrieves a paginated list of hosting instances
func (r *hostingRepository) List(offset, limit int) ([]models.Hosting, error) {
	var hostings []models.Hosting
	err := r.db.Preload("Customer").Preload("HostingPackage").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&hostings).Error
	return hostings, err
}

// Count returns the total number of hosting instances
func (r *hostingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Hosting{}).Count(&count).Error
	return count, err
}

// ListBySyncStatus retrieves hosting instances in the given sync state
func (r *hostingRepository) ListBySyncStatus(status string) ([]models.Hosting, error) {
	var hostings []models.Hosting
	err := r.db.Where("sync_status = ?", status).Find(&hostings).Error
	return hostings, err
}
