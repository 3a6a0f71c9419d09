package repository

import (
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create creates a new invoice in the database
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// GetByID retrieves an invoice with its customer preloaded
func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Customer").First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByNumber retrieves an invoice by its document number
func (r *invoiceRepository) GetByNumber(number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Where("number = ?", number).First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByCustomerID retrieves all invoices of a customer
func (r *invoiceRepository) GetByCustomerID(customerID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("customer_id = ?", customerID).
		Order("due_at DESC").Find(&invoices).Error
	return invoices, err
}

// ListOverdue retrieves open invoices past their due date
func (r *invoiceRepository) ListOverdue() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Preload("Customer").
		Where("status = ? AND due_at < ?", models.InvoiceStatusOpen, time.Now()).
		Find(&invoices).Error
	return invoices, err
}

// Update updates an existing invoice in the database
func (r *invoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete soft deletes an invoice by its ID
func (r *invoiceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Invoice{}, id).Error
}

// List retrieves a paginated list of invoices
func (r *invoiceRepository) List(offset, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Preload("Customer").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&invoices).Error
	return invoices, err
}

// Count returns the total number of invoices
func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}
