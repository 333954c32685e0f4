package response

import (
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/google/uuid"
)

// CustomerResponse is a customer with its picker labels resolved
type CustomerResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Phone       string              `json:"phone"`
	Email       *string             `json:"email,omitempty"`
	Address     *string             `json:"address,omitempty"`
	Province    *string             `json:"province,omitempty"`
	Source      enum.CustomerSource `json:"source"`
	SourceLabel string              `json:"source_label"`
	Status      enum.CustomerStatus `json:"status"`
	StatusLabel string              `json:"status_label"`
	Note        *string             `json:"note,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewCustomerResponse maps a stored customer
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		Province:    c.Province,
		Source:      c.Source,
		SourceLabel: enum.CustomerSourceDictionary.Label(string(c.Source)),
		Status:      c.Status,
		StatusLabel: enum.CustomerStatusDictionary.Label(string(c.Status)),
		Note:        c.Note,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
