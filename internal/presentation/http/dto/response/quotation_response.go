package response

import (
	"time"

	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/pricing"
	"github.com/google/uuid"
)

// QuotationItemResponse is a quotation line with display strings
type QuotationItemResponse struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Price          int64                `json:"price"`
	Quantity       int                  `json:"quantity"`
	DiscountKind   pricing.DiscountKind `json:"discount_kind,omitempty"`
	DiscountValue  *float64             `json:"discount_value,omitempty"`
	Formality      pricing.Formality    `json:"formality"`
	DiscountAmount int64                `json:"discount_amount"`
	Total          int64                `json:"total"`
	Display        ItemDisplay          `json:"display"`
}

// ItemDisplay holds the formatted amounts of a line
type ItemDisplay struct {
	Price          string `json:"price"`
	Discount       string `json:"discount"`
	DiscountAmount string `json:"discount_amount"`
	Total          string `json:"total"`
	Formality      string `json:"formality"`
}

// QuotationResponse is a quotation with display strings
type QuotationResponse struct {
	ID             uuid.UUID               `json:"id"`
	Reference      string                  `json:"reference"`
	Date           string                  `json:"date"`
	CustomerID     uuid.UUID               `json:"customer_id"`
	CustomerName   string                  `json:"customer_name"`
	VehicleModel   string                  `json:"vehicle_model"`
	VehicleVersion *string                 `json:"vehicle_version,omitempty"`
	Color          *string                 `json:"color,omitempty"`
	VehiclePrice   int64                   `json:"vehicle_price"`
	DiscountKind   pricing.DiscountKind    `json:"discount_kind,omitempty"`
	DiscountValue  *float64                `json:"discount_value,omitempty"`
	DiscountAmount int64                   `json:"discount_amount"`
	VehicleTotal   int64                   `json:"vehicle_total"`
	SellTotal      int64                   `json:"sell_total"`
	GiftTotal      int64                   `json:"gift_total"`
	GrandTotal     int64                   `json:"grand_total"`
	Status         enum.QuotationStatus    `json:"status"`
	Note           *string                 `json:"note,omitempty"`
	Items          []QuotationItemResponse `json:"items"`
	Display        QuotationDisplay        `json:"display"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// QuotationDisplay holds the formatted values of a quotation
type QuotationDisplay struct {
	Date           string `json:"date"`
	VehiclePrice   string `json:"vehicle_price"`
	Discount       string `json:"discount"`
	DiscountAmount string `json:"discount_amount"`
	VehicleTotal   string `json:"vehicle_total"`
	SellTotal      string `json:"sell_total"`
	GiftTotal      string `json:"gift_total"`
	GrandTotal     string `json:"grand_total"`
	Status         string `json:"status"`
}

// NewQuotationResponse maps a stored quotation
func NewQuotationResponse(q *entity.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, QuotationItemResponse{
			ID:             item.ID,
			Name:           item.Name,
			Price:          item.Price,
			Quantity:       item.Quantity,
			DiscountKind:   item.DiscountKind,
			DiscountValue:  item.DiscountValue,
			Formality:      item.Formality,
			DiscountAmount: item.DiscountAmount,
			Total:          item.Total,
			Display: ItemDisplay{
				Price:          format.FormatMoney(item.Price),
				Discount:       discountText(item.DiscountValue, item.DiscountKind),
				DiscountAmount: format.FormatMoney(item.DiscountAmount),
				Total:          format.FormatMoney(item.Total),
				Formality:      enum.FormalityDictionary.Label(string(item.Formality)),
			},
		})
	}

	return QuotationResponse{
		ID:             q.ID,
		Reference:      q.Reference,
		Date:           q.Date.In(format.Location).Format("2006-01-02"),
		CustomerID:     q.CustomerID,
		CustomerName:   q.CustomerName,
		VehicleModel:   q.VehicleModel,
		VehicleVersion: q.VehicleVersion,
		Color:          q.Color,
		VehiclePrice:   q.VehiclePrice,
		DiscountKind:   q.DiscountKind,
		DiscountValue:  q.DiscountValue,
		DiscountAmount: q.DiscountAmount,
		VehicleTotal:   q.VehicleTotal,
		SellTotal:      q.SellTotal,
		GiftTotal:      q.GiftTotal,
		GrandTotal:     q.GrandTotal,
		Status:         q.Status,
		Note:           q.Note,
		Items:          items,
		Display: QuotationDisplay{
			Date:           format.FormatTime(q.Date, ""),
			VehiclePrice:   format.FormatMoney(q.VehiclePrice),
			Discount:       discountText(q.DiscountValue, q.DiscountKind),
			DiscountAmount: format.FormatMoney(q.DiscountAmount),
			VehicleTotal:   format.FormatMoney(q.VehicleTotal),
			SellTotal:      format.FormatMoney(q.SellTotal),
			GiftTotal:      format.FormatMoney(q.GiftTotal),
			GrandTotal:     format.FormatMoney(q.GrandTotal),
			Status:         enum.QuotationStatusDictionary.Label(q.Status.String()),
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// QuotationPreviewResponse is a computed but unsaved quotation
type QuotationPreviewResponse struct {
	Vehicle    pricing.LineTotal       `json:"vehicle"`
	Items      []pricing.LineTotal     `json:"items"`
	Totals     pricing.AggregateTotals `json:"totals"`
	GrandTotal pricing.Money           `json:"grand_total"`
	Display    PreviewDisplay          `json:"display"`
}

// PreviewDisplay holds the formatted totals of a preview
type PreviewDisplay struct {
	VehicleDiscount string   `json:"vehicle_discount"`
	VehicleTotal    string   `json:"vehicle_total"`
	Items           []string `json:"items"`
	SellTotal       string   `json:"sell_total"`
	GiftTotal       string   `json:"gift_total"`
	GrandTotal      string   `json:"grand_total"`
}

// NewQuotationPreviewResponse maps a computed breakdown
func NewQuotationPreviewResponse(b *service.QuotationBreakdown) QuotationPreviewResponse {
	itemTotals := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		itemTotals = append(itemTotals, money(item.Total))
	}

	return QuotationPreviewResponse{
		Vehicle:    b.Vehicle,
		Items:      b.Items,
		Totals:     b.Totals,
		GrandTotal: b.GrandTotal,
		Display: PreviewDisplay{
			VehicleDiscount: money(b.Vehicle.DiscountAmount),
			VehicleTotal:    money(b.Vehicle.Total),
			Items:           itemTotals,
			SellTotal:       money(b.Totals.Sell),
			GiftTotal:       money(b.Totals.Gift),
			GrandTotal:      money(b.GrandTotal),
		},
	}
}

func money(m pricing.Money) string {
	return format.FormatMoney(int64(m))
}

func discountText(value *float64, kind pricing.DiscountKind) string {
	if value == nil {
		return ""
	}
	return format.FormatDiscount(*value, kind)
}
