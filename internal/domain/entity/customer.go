package entity

import (
	"time"

	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/textnorm"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a dealership lead or buyer
type Customer struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string              `gorm:"size:255;not null" json:"name"`
	Phone      string              `gorm:"size:50;index" json:"phone"`
	Email      *string             `gorm:"size:255" json:"email,omitempty"`
	Address    *string             `gorm:"type:text" json:"address,omitempty"`
	Province   *string             `gorm:"size:100" json:"province,omitempty"`
	Source     enum.CustomerSource `gorm:"size:30;default:'walk_in'" json:"source"`
	Status     enum.CustomerStatus `gorm:"size:30;default:'new'" json:"status"`
	Note       *string             `gorm:"type:text" json:"note,omitempty"`
	SearchName string              `gorm:"size:512;index" json:"-"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Quotations []Quotation `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave refreshes the accent-free search column
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	c.SearchName = c.SearchKey()
	return nil
}

// SearchKey returns the normalized text customers are searched by
func (c *Customer) SearchKey() string {
	return textnorm.Normalize(c.Name + " " + c.Phone)
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
