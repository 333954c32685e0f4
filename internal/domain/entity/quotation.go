package entity

import (
	"time"

	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/pricing"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quotation represents a vehicle price quotation for a customer.
// All amounts are whole VND.
type Quotation struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Reference      string               `gorm:"size:100;unique;not null" json:"reference"`
	Date           time.Time            `gorm:"type:date;not null" json:"date"`
	CustomerName   string               `gorm:"size:255" json:"customer_name"`
	VehicleModel   string               `gorm:"size:255;not null" json:"vehicle_model"`
	VehicleVersion *string              `gorm:"size:255" json:"vehicle_version,omitempty"`
	Color          *string              `gorm:"size:50" json:"color,omitempty"`
	VehiclePrice   int64                `gorm:"not null" json:"vehicle_price"`
	DiscountKind   pricing.DiscountKind `gorm:"size:20" json:"discount_kind,omitempty"`
	DiscountValue  *float64             `json:"discount_value,omitempty"`
	DiscountAmount int64                `gorm:"default:0" json:"discount_amount"`
	VehicleTotal   int64                `gorm:"default:0" json:"vehicle_total"`
	SellTotal      int64                `gorm:"default:0" json:"sell_total"`
	GiftTotal      int64                `gorm:"default:0" json:"gift_total"`
	GrandTotal     int64                `gorm:"default:0;index" json:"grand_total"`
	Status         enum.QuotationStatus `gorm:"default:0;index" json:"status"`
	Note           *string              `gorm:"type:text" json:"note,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	DeletedAt      gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []QuotationItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationItem is an accessory or service line sold or gifted with the vehicle
type QuotationItem struct {
	ID             uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Name           string               `gorm:"size:255;not null" json:"name"`
	Price          int64                `gorm:"not null" json:"price"`
	Quantity       int                  `gorm:"default:1" json:"quantity"`
	DiscountKind   pricing.DiscountKind `gorm:"size:20" json:"discount_kind,omitempty"`
	DiscountValue  *float64             `json:"discount_value,omitempty"`
	Formality      pricing.Formality    `gorm:"size:20" json:"formality"`
	DiscountAmount int64                `gorm:"default:0" json:"discount_amount"`
	Total          int64                `gorm:"default:0" json:"total"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new quotation item
func (qi *QuotationItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationItem model
func (QuotationItem) TableName() string {
	return "quotation_items"
}

// LineItem converts the stored item to its pricing form
func (qi *QuotationItem) LineItem() pricing.LineItem {
	return pricing.LineItem{
		Name:          qi.Name,
		Price:         pricing.Money(qi.Price),
		Quantity:      qi.Quantity,
		DiscountValue: qi.DiscountValue,
		DiscountKind:  qi.DiscountKind,
		Formality:     qi.Formality,
	}
}
