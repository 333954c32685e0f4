package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/dealerhub/sales-api/pkg/pricing"
	"github.com/dealerhub/sales-api/pkg/utils"
	"github.com/google/uuid"
)

// draws of the reference sequence before CreateQuotation gives up
const referenceAttempts = 3

// statuses a quotation may move to from each status
var quotationTransitions = map[enum.QuotationStatus][]enum.QuotationStatus{
	enum.QuotationStatusDraft:    {enum.QuotationStatusSent, enum.QuotationStatusAccepted, enum.QuotationStatusCanceled},
	enum.QuotationStatusSent:     {enum.QuotationStatusDraft, enum.QuotationStatusAccepted, enum.QuotationStatusCanceled},
	enum.QuotationStatusAccepted: {enum.QuotationStatusCanceled},
}

// upper bounds accepted for entered amounts and quantities
const (
	maxAmount   = 100_000_000_000_000
	maxQuantity = 10_000
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	now           func() time.Time
}

// NewQuotationService creates a new quotation service
func NewQuotationService(quotationRepo repository.QuotationRepository, customerRepo repository.CustomerRepository) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		now:           time.Now,
	}
}

// QuotationItemInput is an accessory or service line
type QuotationItemInput struct {
	Name          string
	Price         int64
	Quantity      int
	DiscountKind  pricing.DiscountKind
	DiscountValue *float64
	Formality     pricing.Formality
}

func (in QuotationItemInput) lineItem() pricing.LineItem {
	return pricing.LineItem{
		Name:          in.Name,
		Price:         pricing.Money(in.Price),
		Quantity:      in.Quantity,
		DiscountValue: in.DiscountValue,
		DiscountKind:  in.DiscountKind,
		Formality:     in.Formality,
	}
}

// QuotationInput holds the editable quotation fields.
// Date is a DD/MM/YYYY display date; empty means today.
type QuotationInput struct {
	CustomerID     uuid.UUID
	Date           string
	VehicleModel   string
	VehicleVersion *string
	Color          *string
	VehiclePrice   int64
	DiscountKind   pricing.DiscountKind
	DiscountValue  *float64
	Note           *string
	Items          []QuotationItemInput
}

// QuotationBreakdown is every amount derived from a quotation input
type QuotationBreakdown struct {
	Vehicle    pricing.LineTotal
	Items      []pricing.LineTotal
	Totals     pricing.AggregateTotals
	GrandTotal pricing.Money
}

func (in *QuotationInput) validatePricing() []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if in.VehiclePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_price", Message: "Vehicle price must not be negative"})
	}
	if in.VehiclePrice > maxAmount {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_price", Message: "Vehicle price is too large"})
	}
	if in.DiscountKind != pricing.DiscountNone && !in.DiscountKind.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_kind", Message: "Unknown discount kind"})
	}
	for i, item := range in.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if strings.TrimSpace(item.Name) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "name", Message: "Name is required"})
		}
		if item.Price < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "price", Message: "Price must not be negative"})
		}
		if item.Price > maxAmount {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "price", Message: "Price is too large"})
		}
		if item.Quantity < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "quantity", Message: "Quantity must not be negative"})
		}
		if item.Quantity > maxQuantity {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "quantity", Message: "Quantity is too large"})
		}
		if item.DiscountKind != pricing.DiscountNone && !item.DiscountKind.IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "discount_kind", Message: "Unknown discount kind"})
		}
		if !item.Formality.IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: prefix + "formality", Message: "Formality must be sell or gift"})
		}
	}
	return fieldErrors
}

func (in *QuotationInput) validate() (time.Time, error) {
	fieldErrors := in.validatePricing()
	if in.CustomerID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_id", Message: "Customer is required"})
	}
	if strings.TrimSpace(in.VehicleModel) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_model", Message: "Vehicle model is required"})
	}

	var date time.Time
	if in.Date != "" {
		d, ok := format.ParseDisplayDate(in.Date)
		if !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Date must be DD/MM/YYYY"})
		}
		date = d
	}

	if len(fieldErrors) > 0 {
		return time.Time{}, apperror.NewValidationError(fieldErrors)
	}
	return date, nil
}

// CalculateQuotation derives the vehicle total, item totals, sell and gift
// totals and the grand total. Gifts are listed but not charged.
func CalculateQuotation(input *QuotationInput) *QuotationBreakdown {
	vehiclePrice := pricing.Money(input.VehiclePrice)
	vehicleDiscount := pricing.ComputeDiscountAmount(vehiclePrice, input.DiscountValue, input.DiscountKind)

	lines := make([]pricing.LineItem, 0, len(input.Items))
	totals := make([]pricing.LineTotal, 0, len(input.Items))
	for _, item := range input.Items {
		line := item.lineItem()
		lines = append(lines, line)
		totals = append(totals, pricing.ComputeLineTotal(line))
	}

	vehicle := pricing.LineTotal{
		BasePrice:      vehiclePrice,
		DiscountAmount: vehicleDiscount,
		Total:          pricing.ComputeTotal(vehiclePrice, vehicleDiscount),
	}
	aggregate := pricing.ComputeAggregateTotals(lines)

	return &QuotationBreakdown{
		Vehicle:    vehicle,
		Items:      totals,
		Totals:     aggregate,
		GrandTotal: pricing.Add(vehicle.Total, aggregate.Sell),
	}
}

// PreviewQuotation computes totals for an unsaved quotation
func (s *QuotationService) PreviewQuotation(input *QuotationInput) (*QuotationBreakdown, error) {
	if fieldErrors := input.validatePricing(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}
	return CalculateQuotation(input), nil
}

// CreateQuotation creates a draft quotation with a new BG reference
func (s *QuotationService) CreateQuotation(ctx context.Context, actor Actor, input *QuotationInput) (*entity.Quotation, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	customer, err := s.loadCustomer(ctx, actor, input.CustomerID)
	if err != nil {
		return nil, err
	}

	quotation := &entity.Quotation{
		UserID: actor.UserID,
		Status: enum.QuotationStatusDraft,
	}
	s.apply(quotation, input, customer, date)

	// a reference taken outside the sequence, e.g. by an import, costs one more draw
	for attempt := 1; ; attempt++ {
		nextNum, err := s.quotationRepo.GetNextReferenceNumber(ctx)
		if err != nil {
			return nil, apperror.Internal("Failed to allocate reference", err)
		}
		quotation.Reference = utils.QuotationReference(nextNum)

		err = s.quotationRepo.Create(ctx, quotation)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateReference) || attempt == referenceAttempts {
			return nil, apperror.Internal("Failed to create quotation", err)
		}
	}

	return s.reload(ctx, quotation.ID)
}

// GetQuotation retrieves a quotation with its items
func (s *QuotationService) GetQuotation(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load quotation", err)
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !actor.owns(quotation.UserID) {
		return nil, apperror.ErrForbidden
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, actor Actor, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.QuotationFilterParams{
		Pagination: input.Pagination,
		Search:     strings.TrimSpace(input.Search),
		Status:     input.Status,
		CustomerID: input.CustomerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	quotations, total, err := s.quotationRepo.List(ctx, actor.scope(), params)
	if err != nil {
		return nil, apperror.Internal("Failed to list quotations", err)
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotation recomputes and saves a draft or sent quotation
func (s *QuotationService) UpdateQuotation(ctx context.Context, actor Actor, id uuid.UUID, input *QuotationInput) (*entity.Quotation, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	quotation, err := s.GetQuotation(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !isEditable(quotation.Status) {
		return nil, apperror.NewConflictError("Only draft or sent quotations can be edited")
	}

	customer, err := s.loadCustomer(ctx, actor, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = quotation.Date
	}

	s.apply(quotation, input, customer, date)
	quotation.Customer = nil

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, apperror.Internal("Failed to update quotation", err)
	}

	return s.reload(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation and its items
func (s *QuotationService) DeleteQuotation(ctx context.Context, actor Actor, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal("Failed to load quotation", err)
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if !actor.owns(quotation.UserID) {
		return apperror.ErrForbidden
	}
	if quotation.Status == enum.QuotationStatusAccepted {
		return apperror.NewConflictError("Accepted quotations cannot be deleted")
	}

	if err := s.quotationRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete quotation", err)
	}
	return nil
}

// UpdateQuotationStatus moves a quotation through its pipeline
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, actor Actor, id uuid.UUID, status enum.QuotationStatus) (*entity.Quotation, error) {
	if !status.IsValid() {
		return nil, apperror.NewFieldError("status", "Unknown quotation status")
	}

	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load quotation", err)
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !actor.owns(quotation.UserID) {
		return nil, apperror.ErrForbidden
	}

	if quotation.Status == status {
		return quotation, nil
	}
	if !canTransition(quotation.Status, status) {
		return nil, apperror.NewConflictError("Cannot move quotation from " + quotation.Status.String() + " to " + status.String())
	}

	if err := s.quotationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperror.Internal("Failed to update quotation status", err)
	}
	quotation.Status = status
	return quotation, nil
}

func (s *QuotationService) apply(q *entity.Quotation, input *QuotationInput, customer *entity.Customer, date time.Time) {
	if date.IsZero() {
		now := s.now().In(format.Location)
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, format.Location)
	}

	breakdown := CalculateQuotation(input)

	q.CustomerID = customer.ID
	q.CustomerName = customer.Name
	q.Date = date
	q.VehicleModel = strings.TrimSpace(input.VehicleModel)
	q.VehicleVersion = input.VehicleVersion
	q.Color = input.Color
	q.VehiclePrice = input.VehiclePrice
	q.DiscountKind = input.DiscountKind
	q.DiscountValue = input.DiscountValue
	q.DiscountAmount = int64(breakdown.Vehicle.DiscountAmount)
	q.VehicleTotal = int64(breakdown.Vehicle.Total)
	q.SellTotal = int64(breakdown.Totals.Sell)
	q.GiftTotal = int64(breakdown.Totals.Gift)
	q.GrandTotal = int64(breakdown.GrandTotal)
	q.Note = input.Note

	q.Items = make([]entity.QuotationItem, 0, len(input.Items))
	for i, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		q.Items = append(q.Items, entity.QuotationItem{
			Name:           strings.TrimSpace(item.Name),
			Price:          item.Price,
			Quantity:       quantity,
			DiscountKind:   item.DiscountKind,
			DiscountValue:  item.DiscountValue,
			Formality:      item.Formality,
			DiscountAmount: int64(breakdown.Items[i].DiscountAmount),
			Total:          int64(breakdown.Items[i].Total),
		})
	}
}

func (s *QuotationService) loadCustomer(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load customer", err)
	}
	if customer == nil || !actor.owns(customer.UserID) {
		return nil, apperror.NewFieldError("customer_id", "Customer not found")
	}
	return customer, nil
}

func (s *QuotationService) reload(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load quotation", err)
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

func isEditable(status enum.QuotationStatus) bool {
	return status == enum.QuotationStatusDraft || status == enum.QuotationStatusSent
}

func canTransition(from, to enum.QuotationStatus) bool {
	return slices.Contains(quotationTransitions[from], to)
}
