package request

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/pricing"
	"github.com/google/uuid"
)

// QuotationItemRequest is an accessory or service line
type QuotationItemRequest struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Price         int64    `json:"price" binding:"min=0,max=100000000000000"`
	Quantity      int      `json:"quantity" binding:"min=0,max=10000"`
	DiscountKind  string   `json:"discount_kind"`
	DiscountValue *float64 `json:"discount_value"`
	Formality     string   `json:"formality" binding:"required"`
}

// QuotationPricingRequest carries the fields totals are computed from
type QuotationPricingRequest struct {
	VehiclePrice  int64                  `json:"vehicle_price" binding:"min=0,max=100000000000000"`
	DiscountKind  string                 `json:"discount_kind"`
	DiscountValue *float64               `json:"discount_value"`
	Items         []QuotationItemRequest `json:"items" binding:"dive"`
}

// QuotationRequest is the body of create and update quotation requests.
// Date is DD/MM/YYYY; it defaults to today.
type QuotationRequest struct {
	QuotationPricingRequest
	CustomerID     uuid.UUID `json:"customer_id" binding:"required"`
	Date           string    `json:"date"`
	VehicleModel   string    `json:"vehicle_model" binding:"required,max=255"`
	VehicleVersion *string   `json:"vehicle_version"`
	Color          *string   `json:"color"`
	Note           *string   `json:"note"`
}

// QuotationStatusRequest moves a quotation to another status
type QuotationStatusRequest struct {
	Status enum.QuotationStatus `json:"status"`
}

// ToInput converts the pricing fields to a service input
func (r *QuotationPricingRequest) ToInput() *service.QuotationInput {
	items := make([]service.QuotationItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, service.QuotationItemInput{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			DiscountKind:  pricing.DiscountKind(item.DiscountKind),
			DiscountValue: item.DiscountValue,
			Formality:     pricing.Formality(item.Formality),
		})
	}
	return &service.QuotationInput{
		VehiclePrice:  r.VehiclePrice,
		DiscountKind:  pricing.DiscountKind(r.DiscountKind),
		DiscountValue: r.DiscountValue,
		Items:         items,
	}
}

// ToInput converts the request to the service input
func (r *QuotationRequest) ToInput() *service.QuotationInput {
	input := r.QuotationPricingRequest.ToInput()
	input.CustomerID = r.CustomerID
	input.Date = r.Date
	input.VehicleModel = r.VehicleModel
	input.VehicleVersion = r.VehicleVersion
	input.Color = r.Color
	input.Note = r.Note
	return input
}
