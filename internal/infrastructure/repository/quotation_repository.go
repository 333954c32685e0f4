package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	domainRepo "github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceSequence numbers quotation references. nextval never hands the
// same value to two transactions.
const ReferenceSequence = "quotation_reference_seq"

var quotationSortColumns = map[string]bool{
	"created_at":  true,
	"date":        true,
	"grand_total": true,
	"reference":   true,
}

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	err := r.db.WithContext(ctx).Create(quotation).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateReference
	}
	return err
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}

		items := quotation.Items
		quotation.Items = nil
		if err := tx.Omit("Customer", "User").Save(quotation).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ID = uuid.Nil
			items[i].QuotationID = quotation.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		quotation.Items = items
		return nil
	})
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&entity.QuotationItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Quotation{}, "id = ?", id).Error
	})
}

func (r *quotationRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})

	// Only filter by user_id if a non-zero userID is provided (managers see all)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		pattern := containsPattern(params.Search)
		query = query.Where(`reference ILIKE ? ESCAPE '\' OR customer_name ILIKE ? ESCAPE '\' OR vehicle_model ILIKE ? ESCAPE '\'`,
			pattern, pattern, pattern)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if quotationSortColumns[params.SortBy] {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order(sortBy + " " + sortOrder).
		Find(&quotations).Error

	return quotations, total, err
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *quotationRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('" + ReferenceSequence + "')").Scan(&next).Error
	return int(next), err
}

func (r *quotationRepository) SumByUser(ctx context.Context, status enum.QuotationStatus, from, to time.Time) ([]domainRepo.SalesSum, error) {
	var rows []domainRepo.SalesSum
	err := r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Select("user_id, COUNT(*) AS count, COALESCE(SUM(grand_total), 0) AS total").
		Where("status = ? AND date >= ? AND date < ?", status, from, to).
		Group("user_id").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}
