package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/grouping"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	actor := Actor{UserID: uuid.New()}
	customer := &entity.Customer{ID: uuid.New(), UserID: actor.UserID}
	svc := NewTaskService(newStubTaskRepo(), newStubCustomerRepo(customer))

	task, err := svc.CreateTask(context.Background(), actor, &TaskInput{
		CustomerID: &customer.ID,
		Title:      " Gọi lại hẹn lái thử ",
		DueDate:    "20/03/2024",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gọi lại hẹn lái thử", task.Title)
	assert.Equal(t, enum.TaskStatusTodo, task.Status)
	assert.Equal(t, "20/03/2024", format.FormatTime(task.DueDate, ""))
	assert.Equal(t, actor.UserID, task.UserID)
}

func TestTaskService_CreateValidation(t *testing.T) {
	actor := Actor{UserID: uuid.New()}
	svc := NewTaskService(newStubTaskRepo(), newStubCustomerRepo())

	_, err := svc.CreateTask(context.Background(), actor, &TaskInput{DueDate: "32/01/2024", Status: enum.TaskStatus(7)})
	assert.ElementsMatch(t, []string{"title", "status", "due_date"}, assertValidation(t, err))

	stranger := uuid.New()
	_, err = svc.CreateTask(context.Background(), actor, &TaskInput{Title: "x", DueDate: "2024-03-01T09:00:00+07:00", CustomerID: &stranger})
	assert.Equal(t, []string{"customer_id"}, assertValidation(t, err))
}

func assertValidation(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	actor := Actor{UserID: uuid.New()}
	tasks := newStubTaskRepo()
	svc := NewTaskService(tasks, newStubCustomerRepo())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, actor, &TaskInput{Title: "Gửi báo giá", DueDate: "01/03/2024"})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, actor, task.ID, &TaskInput{Title: "Gửi báo giá", DueDate: "02/03/2024", Status: enum.TaskStatusDone})
	require.NoError(t, err)
	assert.Equal(t, enum.TaskStatusDone, updated.Status)

	_, err = svc.UpdateTask(ctx, Actor{UserID: uuid.New()}, task.ID, &TaskInput{Title: "x", DueDate: "02/03/2024"})
	assert.Equal(t, http.StatusForbidden, statusOf(err))

	require.NoError(t, svc.DeleteTask(ctx, actor, task.ID))
	_, err = svc.GetTask(ctx, actor, task.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestTaskService_Sections(t *testing.T) {
	at := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, format.Location)
	}
	tasks := newStubTaskRepo()
	tasks.all = []entity.Task{
		{Title: "a", DueDate: at(2024, time.January, 5, 9)},
		{Title: "b", DueDate: at(2024, time.January, 20, 9)},
		{Title: "c", DueDate: at(2024, time.February, 1, 0)},
		{Title: "d", DueDate: at(2024, time.March, 1, 10)},
		{Title: "e", DueDate: time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC)},
	}
	svc := NewTaskService(tasks, newStubCustomerRepo())
	actor := Actor{UserID: uuid.New()}

	sections, err := svc.TaskSections(context.Background(), actor, &TaskSectionsInput{Order: grouping.Desc})
	require.NoError(t, err)

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	// 31/03 18:00 UTC is already April in Vietnam
	assert.Equal(t, []string{"04/2024", "03/2024", "02/2024", "01/2024"}, titles)
	assert.Equal(t, "a", sections[3].Data[0].Title)
	assert.Equal(t, "b", sections[3].Data[1].Title)

	asc, err := svc.TaskSections(context.Background(), actor, &TaskSectionsInput{Order: grouping.Asc})
	require.NoError(t, err)
	assert.Equal(t, "01/2024", asc[0].Title)

	tasks.all = nil
	empty, err := svc.TaskSections(context.Background(), actor, &TaskSectionsInput{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
