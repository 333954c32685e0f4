package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/google/uuid"
)

// ErrDuplicateReference is returned by Create when the reference is already taken
var ErrDuplicateReference = errors.New("quotation reference already exists")

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	// Create stores the quotation together with its items
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	// Update saves the quotation and replaces its items
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	// GetNextReferenceNumber draws the next value of the reference sequence
	GetNextReferenceNumber(ctx context.Context) (int, error)
	// SumByUser totals quotations with the given status dated within [from, to)
	SumByUser(ctx context.Context, status enum.QuotationStatus, from, to time.Time) ([]SalesSum, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// SalesSum is the aggregate of one salesperson's quotations
type SalesSum struct {
	UserID uuid.UUID
	Count  int64
	Total  int64
}
