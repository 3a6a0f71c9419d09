package repository

import (
	"strings"

	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// websiteRepository implements the WebsiteRepository interface
type websiteRepository struct {
	db *gorm.DB
}

// NewWebsiteRepository creates a new website repository instance
func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &websiteRepository{db: db}
}

// Create creates a new website in the database
func (r *websiteRepository) Create(website *models.Website) error {
	return r.db.Create(website).Error
}

// GetByID retrieves a website with its customer preloaded
func (r *websiteRepository) GetByID(id uint) (*models.Website, error) {
	var website models.Website
	err := r.db.Preload("Customer").First(&website, id).Error
	if err != nil {
		return nil, err
	}
	return &website, nil
}

// GetByDomain retrieves a website by its domain
func (r *websiteRepository) GetByDomain(domain string) (*models.Website, error) {
	var website models.Website
	err := r.db.Where("domain = ?", strings.ToLower(strings.TrimSpace(domain))).
		First(&website).Error
	if err != nil {
		return nil, err
	}
	return &website, nil
}

// GetByCustomerID retrieves all websites of a customer
func (r *websiteRepository) GetByCustomerID(customerID uint) ([]models.Website, error) {
	var websites []models.Website
	err := r.db.Where("customer_id = ?", customerID).Find(&websites).Error
	return websites, err
}

// Update updates an existing website in the database
func (r *websiteRepository) Update(website *models.Website) error {
	return r.db.Save(website).Error
}

// Delete soft deletes a website by its ID
func (r *websiteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Website{}, id).Error
}

// List retrieves a paginated list of websites
func (r *websiteRepository) List(offset, limit int) ([]models.Website, error) {
	var websites []models.Website
	err := r.db.Preload("Customer").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&websites).Error
	return websites, err
}

// Count returns the total number of websites
func (r *websiteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Website{}).Count(&count).Error
	return count, err
}
