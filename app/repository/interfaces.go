package repository

import (
	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for operator account database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPIKeyHash(hash string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// CustomerRepository defines the interface for customer database operations
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Customer, error)
	Count() (int64, error)
	Search(query string) ([]models.Customer, error)
}

// HostingRepository defines the interface for webhosting instance operations
type HostingRepository interface {
	Create(hosting *models.Hosting) error
	GetByID(id uint) (*models.Hosting, error)
	GetByCustomerID(customerID uint) ([]models.Hosting, error)
	Update(hosting *models.Hosting) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Hosting, error)
	Count() (int64, error)
	ListBySyncStatus(status string) ([]models.Hosting, error)
}

// VPSRepository defines the interface for virtual server instance operations
type VPSRepository interface {
	Create(vps *models.VPS) error
	GetByID(id uint) (*models.VPS, error)
	GetByCustomerID(customerID uint) ([]models.VPS, error)
	Update(vps *models.VPS) error
	Delete(id uint) error
	List(offset, limit int) ([]models.VPS, error)
	Count() (int64, error)
	ListBySyncStatus(status string) ([]models.VPS, error)
}

// WebsiteRepository defines the interface for website database operations
type WebsiteRepository interface {
	Create(website *models.Website) error
	GetByID(id uint) (*models.Website, error)
	GetByDomain(domain string) (*models.Website, error)
	GetByCustomerID(customerID uint) ([]models.Website, error)
	Update(website *models.Website) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Website, error)
	Count() (int64, error)
}

// ControlPanelRepository defines the interface for control panel configurations
type ControlPanelRepository interface {
	Create(panel *models.ControlPanel) error
	GetByID(id uint) (*models.ControlPanel, error)
	GetActive() ([]models.ControlPanel, error)
	GetAll() ([]models.ControlPanel, error)
	Update(panel *models.ControlPanel) error
	Delete(id uint) error
}

// PlanMappingRepository defines the interface for control panel plan mappings
type PlanMappingRepository interface {
	Create(mapping *models.ControlPanelPlanMapping) error
	GetByID(id uint) (*models.ControlPanelPlanMapping, error)
	GetByPanelID(panelID uint) ([]models.ControlPanelPlanMapping, error)
	FindLocal(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error)
	Update(mapping *models.ControlPanelPlanMapping) error
	Delete(id uint) error
	LocalMappingExists(panelID uint, planType string, localPlanID uint, exceptID uint) (bool, error)
}

// PackageRepository defines the interface for local product definitions
type PackageRepository interface {
	CreateHostingPackage(pkg *models.HostingPackage) error
	GetHostingPackageByID(id uint) (*models.HostingPackage, error)
	ListHostingPackages() ([]models.HostingPackage, error)
	UpdateHostingPackage(pkg *models.HostingPackage) error
	DeleteHostingPackage(id uint) error

	CreateVPSPackage(pkg *models.VPSPackage) error
	GetVPSPackageByID(id uint) (*models.VPSPackage, error)
	ListVPSPackages() ([]models.VPSPackage, error)
	UpdateVPSPackage(pkg *models.VPSPackage) error
	DeleteVPSPackage(id uint) error
}

// InvoiceRepository defines the interface for invoice database operations
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByID(id uint) (*models.Invoice, error)
	GetByNumber(number string) (*models.Invoice, error)
	GetByCustomerID(customerID uint) ([]models.Invoice, error)
	ListOverdue() ([]models.Invoice, error)
	Update(invoice *models.Invoice) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Invoice, error)
	Count() (int64, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Customer     CustomerRepository
	Hosting      HostingRepository
	VPS          VPSRepository
	Website      WebsiteRepository
	ControlPanel ControlPanelRepository
	PlanMapping  PlanMappingRepository
	Package      PackageRepository
	Invoice      InvoiceRepository
	Setting      SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Customer:     NewCustomerRepository(db),
		Hosting:      NewHostingRepository(db),
		VPS:          NewVPSRepository(db),
		Website:      NewWebsiteRepository(db),
		ControlPanel: NewControlPanelRepository(db),
		PlanMapping:  NewPlanMappingRepository(db),
		Package:      NewPackageRepository(db),
		Invoice:      NewInvoiceRepository(db),
		Setting:      NewSettingRepository(db),
	}
}
