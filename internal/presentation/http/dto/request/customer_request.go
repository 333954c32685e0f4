package request

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/enum"
)

// CustomerRequest is the body of create and update customer requests
type CustomerRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Phone    string  `json:"phone" binding:"required,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Address  *string `json:"address"`
	Province *string `json:"province" binding:"omitempty,max=100"`
	Source   string  `json:"source"`
	Status   string  `json:"status"`
	Note     *string `json:"note"`
}

// ToInput converts the request to the service input
func (r *CustomerRequest) ToInput() *service.CustomerInput {
	return &service.CustomerInput{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Province: r.Province,
		Source:   enum.CustomerSource(r.Source),
		Status:   enum.CustomerStatus(r.Status),
		Note:     r.Note,
	}
}
