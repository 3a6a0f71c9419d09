package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// packageRepository implements the PackageRepository interface
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository instance
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// CreateHostingPackage creates a new hosting package
func (r *packageRepository) CreateHostingPackage(pkg *models.HostingPackage) error {
	return r.db.Create(pkg).Error
}

// GetHostingPackageByID retrieves a hosting package by its ID
func (r *packageRepository) GetHostingPackageByID(id uint) (*models.HostingPackage, error) {
	var pkg models.HostingPackage
	err := r.db.First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListHostingPackages retrieves all hosting packages
func (r *packageRepository) ListHostingPackages() ([]models.HostingPackage, error) {
	var pkgs []models.HostingPackage
	err := r.db.Order("price_monthly_cent ASC").Find(&pkgs).Error
	return pkgs, err
}

// UpdateHostingPackage updates an existing hosting package
func (r *packageRepository) UpdateHostingPackage(pkg *models.HostingPackage) error {
	return r.db.Save(pkg).Error
}

// DeleteHostingPackage removes a hosting package
func (r *packageRepository) DeleteHostingPackage(id uint) error {
	return r.db.Delete(&models.HostingPackage{}, id).Error
}

// CreateVPSPackage creates a new VPS package
func (r *packageRepository) CreateVPSPackage(pkg *models.VPSPackage) error {
	return r.db.Create(pkg).Error
}

// GetVPSPackageByID retrieves a VPS package by its ID
func (r *packageRepository) GetVPSPackageByID(id uint) (*models.VPSPackage, error) {
	var pkg models.VPSPackage
	err := r.db.First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListVPSPackages retrieves all VPS packages
func (r *packageRepository) ListVPSPackages() ([]models.VPSPackage, error) {
	var pkgs []models.VPSPackage
	err := r.db.Order("price_monthly_cent ASC").Find(&pkgs).Error
	return pkgs, err
}

// UpdateVPSPackage updates an existing VPS package
func (r *packageRepository) UpdateVPSPackage(pkg *models.VPSPackage) error {
	return r.db.Save(pkg).Error
}

// DeleteVPSPackage removes a VPS package
func (r *packageRepository) DeleteVPSPackage(id uint) error {
	return r.db.Delete(&models.VPSPackage{}, id).Error
}
