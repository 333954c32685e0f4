package repository

import (
	"context"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/google/uuid"
)

// TaskRepository defines the interface for sales task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *TaskFilterParams) ([]entity.Task, int64, error)
	// ListAll returns every matching task of userID without paging, ordered by due date
	ListAll(ctx context.Context, userID uuid.UUID, params *TaskFilterParams) ([]entity.Task, error)
}

// TaskFilterParams contains filtering parameters for task queries
type TaskFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.TaskStatus
	CustomerID *uuid.UUID
	DueFrom    *time.Time
	DueTo      *time.Time
}
