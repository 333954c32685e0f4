package service

import (
	"context"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/google/uuid"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return r.err
}

func (r *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], r.err
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, r.err
		}
	}
	return nil, r.err
}

func (r *stubUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], r.err
}

func (r *stubUserRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error) {
	out := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, r.err
}

type stubCustomerRepo struct {
	customers  map[uuid.UUID]*entity.Customer
	lastParams *repository.CustomerFilterParams
	lastUserID uuid.UUID
	err        error
}

func newStubCustomerRepo(customers ...*entity.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if r.err != nil {
		return r.err
	}
	customer.ID = uuid.New()
	customer.SearchName = customer.SearchKey()
	r.customers[customer.ID] = customer
	return nil
}

func (r *stubCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], r.err
}

func (r *stubCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, r.err
		}
	}
	return nil, r.err
}

func (r *stubCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	customer.SearchName = customer.SearchKey()
	r.customers[customer.ID] = customer
	return r.err
}

func (r *stubCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return r.err
}

func (r *stubCustomerRepo) List(ctx context.Context, userID uuid.UUID, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	r.lastUserID = userID
	r.lastParams = params
	var out []entity.Customer
	for _, c := range r.customers {
		if userID != uuid.Nil && c.UserID != userID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), r.err
}

type stubQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
	nextRef    int
	sums       []repository.SalesSum
	sumFrom    time.Time
	sumTo      time.Time
	sumStatus  enum.QuotationStatus
	createErrs []error
	err        error
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation), nextRef: 1}
}

func (r *stubQuotationRepo) Create(ctx context.Context, quotation *entity.Quotation) error {
	if r.err != nil {
		return r.err
	}
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		return err
	}
	quotation.ID = uuid.New()
	r.quotations[quotation.ID] = quotation
	return nil
}

func (r *stubQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.quotations[id], r.err
}

func (r *stubQuotationRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	return r.quotations[id], r.err
}

func (r *stubQuotationRepo) Update(ctx context.Context, quotation *entity.Quotation) error {
	r.quotations[quotation.ID] = quotation
	return r.err
}

func (r *stubQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	return r.err
}

func (r *stubQuotationRepo) List(ctx context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, q := range r.quotations {
		if userID != uuid.Nil && q.UserID != userID {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), r.err
}

func (r *stubQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if q, ok := r.quotations[id]; ok {
		q.Status = status
	}
	return r.err
}

func (r *stubQuotationRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, r.err
}

func (r *stubQuotationRepo) SumByUser(ctx context.Context, status enum.QuotationStatus, from, to time.Time) ([]repository.SalesSum, error) {
	r.sumStatus, r.sumFrom, r.sumTo = status, from, to
	return r.sums, r.err
}

type stubTaskRepo struct {
	tasks map[uuid.UUID]*entity.Task
	all   []entity.Task
	err   error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *stubTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	if r.err != nil {
		return r.err
	}
	task.ID = uuid.New()
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	return r.tasks[id], r.err
}

func (r *stubTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	return r.err
}

func (r *stubTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return r.err
}

func (r *stubTaskRepo) List(ctx context.Context, userID uuid.UUID, params *repository.TaskFilterParams) ([]entity.Task, int64, error) {
	return r.all, int64(len(r.all)), r.err
}

func (r *stubTaskRepo) ListAll(ctx context.Context, userID uuid.UUID, params *repository.TaskFilterParams) ([]entity.Task, error) {
	return r.all, r.err
}
