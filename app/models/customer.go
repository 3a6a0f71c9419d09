package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a billing customer of the reseller. The email address doubles as
// the natural key used to match the customer against control-panel accounts.
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UUID      string         `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email     string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Phone     string         `gorm:"type:varchar(50);default:''" json:"phone" validate:"max=50"`
	Company   string         `gorm:"type:varchar(200);default:''" json:"company" validate:"max=200"`
	Street    string         `gorm:"type:varchar(255);default:''" json:"street"`
	Zip       string         `gorm:"type:varchar(20);default:''" json:"zip"`
	City      string         `gorm:"type:varchar(150);default:''" json:"city"`
	Country   string         `gorm:"type:varchar(2);default:'DE'" json:"country"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns the public customer reference.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	return nil
}

func (c *Customer) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// NormalizedEmail returns the email in the form used for remote matching.
func (c *Customer) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(c.Email))
}
