package request

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/google/uuid"
)

// TaskRequest is the body of create and update task requests.
// DueDate is DD/MM/YYYY or an ISO 8601 timestamp.
type TaskRequest struct {
	CustomerID  *uuid.UUID      `json:"customer_id"`
	Title       string          `json:"title" binding:"required,max=255"`
	Description *string         `json:"description"`
	DueDate     string          `json:"due_date" binding:"required"`
	Status      enum.TaskStatus `json:"status"`
}

// ToInput converts the request to the service input
func (r *TaskRequest) ToInput() *service.TaskInput {
	return &service.TaskInput{
		CustomerID:  r.CustomerID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      r.Status,
	}
}
