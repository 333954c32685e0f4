package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(err error) int {
	return apperror.GetAppError(err).Code
}

func TestCustomerService_Create(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo)
	actor := Actor{UserID: uuid.New()}

	customer, err := svc.CreateCustomer(context.Background(), actor, &CustomerInput{
		Name:  "  Trần Thị Bích ",
		Phone: "0903123456",
	})
	require.NoError(t, err)

	assert.Equal(t, actor.UserID, customer.UserID)
	assert.Equal(t, "Trần Thị Bích", customer.Name)
	assert.Equal(t, enum.CustomerSourceWalkIn, customer.Source)
	assert.Equal(t, enum.CustomerStatusNew, customer.Status)
	assert.Equal(t, "tran thi bich 0903123456", customer.SearchName)
}

func TestCustomerService_CreateValidation(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.CreateCustomer(context.Background(), Actor{UserID: uuid.New()}, &CustomerInput{
		Source: "tiktok",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "phone", "source"}, fields)
}

func TestCustomerService_DuplicatePhone(t *testing.T) {
	existing := &entity.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "A", Phone: "0909000111"}
	svc := NewCustomerService(newStubCustomerRepo(existing))

	_, err := svc.CreateCustomer(context.Background(), Actor{UserID: uuid.New()}, &CustomerInput{Name: "B", Phone: "0909000111"})
	assert.Equal(t, http.StatusConflict, statusOf(err))

	// keeping its own phone on update is fine
	owner := Actor{UserID: existing.UserID}
	updated, err := svc.UpdateCustomer(context.Background(), owner, existing.ID, &CustomerInput{
		Name:   "A updated",
		Phone:  "0909000111",
		Status: enum.CustomerStatusTestDrive,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.CustomerStatusTestDrive, updated.Status)
}

func TestCustomerService_Ownership(t *testing.T) {
	owner := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), UserID: owner, Name: "C", Phone: "1"}
	svc := NewCustomerService(newStubCustomerRepo(customer))
	ctx := context.Background()

	_, err := svc.GetCustomer(ctx, Actor{UserID: uuid.New()}, customer.ID)
	assert.Equal(t, http.StatusForbidden, statusOf(err))

	got, err := svc.GetCustomer(ctx, Actor{UserID: uuid.New(), IsAdmin: true}, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.ID)

	_, err = svc.GetCustomer(ctx, Actor{UserID: owner}, uuid.New())
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	err = svc.DeleteCustomer(ctx, Actor{UserID: uuid.New()}, customer.ID)
	assert.Equal(t, http.StatusForbidden, statusOf(err))

	require.NoError(t, svc.DeleteCustomer(ctx, Actor{UserID: owner}, customer.ID))
}

func TestCustomerService_ListNormalizesSearch(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo)
	actor := Actor{UserID: uuid.New()}

	result, err := svc.ListCustomers(context.Background(), actor, &ListCustomersInput{Search: "  Đà Lạt "})
	require.NoError(t, err)

	assert.Equal(t, "da lat", repo.lastParams.Search)
	assert.Equal(t, actor.UserID, repo.lastUserID)
	assert.NotNil(t, result.Items)
	assert.Equal(t, 1, result.Pagination.CurrentPage)

	_, err = svc.ListCustomers(context.Background(), Actor{UserID: uuid.New(), IsAdmin: true}, &ListCustomersInput{})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, repo.lastUserID)
}
