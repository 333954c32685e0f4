package response

import (
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/grouping"
	"github.com/google/uuid"
)

// TaskResponse is a task with its due date formatted for display
type TaskResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	DueDate      time.Time       `json:"due_date"`
	DueDateText  string          `json:"due_date_text"`
	DueTimeText  string          `json:"due_time_text"`
	Status       enum.TaskStatus `json:"status"`
	StatusLabel  string          `json:"status_label"`
}

// NewTaskResponse maps a stored task
func NewTaskResponse(t *entity.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CustomerID:  t.CustomerID,
		DueDate:     t.DueDate,
		DueDateText: format.FormatTime(t.DueDate, format.DefaultDatePattern),
		DueTimeText: format.FormatTime(t.DueDate, "HH:mm"),
		Status:      t.Status,
		StatusLabel: enum.TaskStatusDictionary.Label(t.Status.String()),
	}
	if t.Customer != nil {
		resp.CustomerName = t.Customer.Name
	}
	return resp
}

// NewTaskSections maps grouped tasks, keeping section order
func NewTaskSections(sections []grouping.Section[entity.Task]) []grouping.Section[TaskResponse] {
	out := make([]grouping.Section[TaskResponse], 0, len(sections))
	for _, s := range sections {
		data := make([]TaskResponse, 0, len(s.Data))
		for i := range s.Data {
			data = append(data, NewTaskResponse(&s.Data[i]))
		}
		out = append(out, grouping.Section[TaskResponse]{Title: s.Title, Data: data})
	}
	return out
}
