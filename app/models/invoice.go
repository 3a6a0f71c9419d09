package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	InvoiceStatusOpen     = "open"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusCanceled = "canceled"
)

// Invoice is a billing document for a customer. The reminder scheduler reads
// open invoices past due and records when a reminder mail went out.
type Invoice struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CustomerID     uint           `gorm:"not null;index" json:"customer_id"`
	Customer       *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Number         string         `gorm:"uniqueIndex;type:varchar(50);not null" json:"number" validate:"required"`
	AmountCent     int            `gorm:"not null;default:0" json:"amount_cent"`
	Currency       string         `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	Status         string         `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	DueAt          time.Time      `gorm:"not null;index" json:"due_at"`
	PaidAt         *time.Time     `gorm:"type:timestamp;default:null" json:"paid_at,omitempty"`
	ReminderSentAt *time.Time     `gorm:"type:timestamp;default:null" json:"reminder_sent_at,omitempty"`
	ReminderCount  int            `gorm:"not null;default:0" json:"reminder_count"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsOverdue reports whether the invoice is open and past its due date.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusOpen && now.After(i.DueAt)
}
