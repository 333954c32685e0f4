package entity

import (
	"time"

	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a follow-up a salesperson schedules, e.g. a call or a test drive
type Task struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	DueDate     time.Time       `gorm:"not null;index" json:"due_date"`
	Status      enum.TaskStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new task
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}
