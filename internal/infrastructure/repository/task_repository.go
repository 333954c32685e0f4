package repository

import (
	"context"
	"errors"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	domainRepo "github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) domainRepo.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &task, err
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Omit("Customer").Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, "id = ?", id).Error
}

func (r *taskRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.TaskFilterParams) ([]entity.Task, int64, error) {
	var tasks []entity.Task
	var total int64

	query := r.filtered(ctx, userID, params)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("due_date ASC").
		Find(&tasks).Error

	return tasks, total, err
}

func (r *taskRepository) ListAll(ctx context.Context, userID uuid.UUID, params *domainRepo.TaskFilterParams) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.filtered(ctx, userID, params).
		Preload("Customer").
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) filtered(ctx context.Context, userID uuid.UUID, params *domainRepo.TaskFilterParams) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Task{})
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.DueFrom != nil {
		query = query.Where("due_date >= ?", *params.DueFrom)
	}
	if params.DueTo != nil {
		query = query.Where("due_date < ?", *params.DueTo)
	}
	return query
}
