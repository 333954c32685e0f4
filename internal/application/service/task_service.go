package service

import (
	"context"
	"strings"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/grouping"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/google/uuid"
)

// TaskService handles sales task operations
type TaskService struct {
	taskRepo     repository.TaskRepository
	customerRepo repository.CustomerRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository, customerRepo repository.CustomerRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		customerRepo: customerRepo,
	}
}

// TaskInput holds the editable task fields.
// DueDate is a DD/MM/YYYY display date or an ISO 8601 timestamp.
type TaskInput struct {
	CustomerID  *uuid.UUID
	Title       string
	Description *string
	DueDate     string
	Status      enum.TaskStatus
}

func (in *TaskInput) validate() (time.Time, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.Title) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if !in.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "Unknown task status"})
	}

	due, ok := parseDueDate(in.DueDate)
	if !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "due_date", Message: "Due date must be DD/MM/YYYY"})
	}

	if len(fieldErrors) > 0 {
		return time.Time{}, apperror.NewValidationError(fieldErrors)
	}
	return due, nil
}

func parseDueDate(value string) (time.Time, bool) {
	if t, ok := format.ParseDisplayDate(value); ok {
		return t, true
	}
	return format.ParseISO(value)
}

// CreateTask creates a task owned by the actor
func (s *TaskService) CreateTask(ctx context.Context, actor Actor, input *TaskInput) (*entity.Task, error) {
	due, err := input.validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, actor, input.CustomerID); err != nil {
		return nil, err
	}

	task := &entity.Task{UserID: actor.UserID}
	applyTask(task, input, due)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, apperror.Internal("Failed to create task", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load task", err)
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}
	if !actor.owns(task.UserID) {
		return nil, apperror.ErrForbidden
	}
	return task, nil
}

// UpdateTask replaces the editable fields of a task
func (s *TaskService) UpdateTask(ctx context.Context, actor Actor, id uuid.UUID, input *TaskInput) (*entity.Task, error) {
	due, err := input.validate()
	if err != nil {
		return nil, err
	}

	task, err := s.GetTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, actor, input.CustomerID); err != nil {
		return nil, err
	}

	applyTask(task, input, due)
	task.Customer = nil

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, apperror.Internal("Failed to update task", err)
	}
	return task, nil
}

// DeleteTask soft-deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetTask(ctx, actor, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete task", err)
	}
	return nil
}

// ListTasksInput represents the input for listing tasks
type ListTasksInput struct {
	Pagination *pagination.PaginationParams
	Status     *enum.TaskStatus
	CustomerID *uuid.UUID
}

// ListTasks lists tasks ordered by due date
func (s *TaskService) ListTasks(ctx context.Context, actor Actor, input *ListTasksInput) (*pagination.PaginatedResult[entity.Task], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.TaskFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		CustomerID: input.CustomerID,
	}

	tasks, total, err := s.taskRepo.List(ctx, actor.scope(), params)
	if err != nil {
		return nil, apperror.Internal("Failed to list tasks", err)
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tasks, pag), nil
}

// TaskSectionsInput selects the tasks to group
type TaskSectionsInput struct {
	Order  grouping.Order
	Status *enum.TaskStatus
}

// TaskSections returns the actor's tasks grouped by due month (MM/YYYY),
// months sorted by Order and tasks by due date within a month
func (s *TaskService) TaskSections(ctx context.Context, actor Actor, input *TaskSectionsInput) ([]grouping.Section[entity.Task], error) {
	tasks, err := s.taskRepo.ListAll(ctx, actor.UserID, &repository.TaskFilterParams{Status: input.Status})
	if err != nil {
		return nil, apperror.Internal("Failed to list tasks", err)
	}

	return grouping.GroupByTimeKey(tasks, dueMonth, input.Order), nil
}

func dueMonth(t entity.Task) string {
	return grouping.MonthLabel(t.DueDate.In(format.Location))
}

func (s *TaskService) checkCustomer(ctx context.Context, actor Actor, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *id)
	if err != nil {
		return apperror.Internal("Failed to load customer", err)
	}
	if customer == nil || !actor.owns(customer.UserID) {
		return apperror.NewFieldError("customer_id", "Customer not found")
	}
	return nil
}

func applyTask(t *entity.Task, input *TaskInput, due time.Time) {
	t.CustomerID = input.CustomerID
	t.Title = strings.TrimSpace(input.Title)
	t.Description = input.Description
	t.DueDate = due
	t.Status = input.Status
}
