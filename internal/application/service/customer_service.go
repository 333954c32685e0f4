package service

import (
	"context"
	"strings"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/dealerhub/sales-api/pkg/textnorm"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Actor is the authenticated user a service call acts for.
// Admins see and edit every salesperson's records.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// scope is the owner filter for list queries; uuid.Nil lists everything
func (a Actor) scope() uuid.UUID {
	if a.IsAdmin {
		return uuid.Nil
	}
	return a.UserID
}

func (a Actor) owns(ownerID uuid.UUID) bool {
	return a.IsAdmin || ownerID == a.UserID
}

// CustomerInput holds the editable customer fields
type CustomerInput struct {
	Name     string
	Phone    string
	Email    *string
	Address  *string
	Province *string
	Source   enum.CustomerSource
	Status   enum.CustomerStatus
	Note     *string
}

func (in *CustomerInput) validate() error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(in.Phone) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone is required"})
	}
	if in.Source == "" {
		in.Source = enum.CustomerSourceWalkIn
	}
	if !enum.CustomerSourceDictionary.Has(string(in.Source)) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "source", Message: "Unknown customer source"})
	}
	if in.Status == "" {
		in.Status = enum.CustomerStatusNew
	}
	if !enum.CustomerStatusDictionary.Has(string(in.Status)) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "Unknown customer status"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (in *CustomerInput) apply(c *entity.Customer) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = in.Email
	c.Address = in.Address
	c.Province = in.Province
	c.Source = in.Source
	c.Status = in.Status
	c.Note = in.Note
}

// CreateCustomer creates a customer owned by the actor
func (s *CustomerService) CreateCustomer(ctx context.Context, actor Actor, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, input.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	customer := &entity.Customer{UserID: actor.UserID}
	input.apply(customer)

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.Internal("Failed to create customer", err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("Failed to load customer", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if !actor.owns(customer.UserID) {
		return nil, apperror.ErrForbidden
	}
	return customer, nil
}

// UpdateCustomer replaces the editable fields of a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor Actor, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomer(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, input.Phone, customer.ID); err != nil {
		return nil, err
	}

	input.apply(customer)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.Internal("Failed to update customer", err)
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, actor, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return apperror.Internal("Failed to delete customer", err)
	}
	return nil
}

// ListCustomersInput represents the input for listing customers
type ListCustomersInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.CustomerStatus
	Source     *enum.CustomerSource
}

// ListCustomers lists customers. The search term matches regardless of
// accents and case, so "da lat" finds "Đà Lạt".
func (s *CustomerService) ListCustomers(ctx context.Context, actor Actor, input *ListCustomersInput) (*pagination.PaginatedResult[entity.Customer], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	params := &repository.CustomerFilterParams{
		Pagination: input.Pagination,
		Search:     textnorm.Normalize(strings.TrimSpace(input.Search)),
		Status:     input.Status,
		Source:     input.Source,
	}

	customers, total, err := s.customerRepo.List(ctx, actor.scope(), params)
	if err != nil {
		return nil, apperror.Internal("Failed to list customers", err)
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

func (s *CustomerService) ensurePhoneFree(ctx context.Context, phone string, self uuid.UUID) error {
	existing, err := s.customerRepo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return apperror.Internal("Failed to check phone", err)
	}
	if existing != nil && existing.ID != self {
		return apperror.NewConflictError("A customer with this phone number already exists")
	}
	return nil
}
