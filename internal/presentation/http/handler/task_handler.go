package handler

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/request"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/response"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/grouping"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// TaskHandler handles follow-up task HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles listing tasks
// @Summary List Tasks
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param status query string false "Todo, InProgress, Done or Canceled"
// @Param customer_id query string false "Customer filter"
// @Success 200 {object} response.APIResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	status, ok := taskStatusQuery(c)
	if !ok {
		return
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), a, &service.ListTasksInput{
		Pagination: pageParams(c),
		Status:     status,
		CustomerID: optionalUUID(c, "customer_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Tasks retrieved successfully", pagination.Map(result, func(t entity.Task) response.TaskResponse {
		return response.NewTaskResponse(&t)
	}))
}

// Sections returns the caller's tasks grouped by due month
// @Summary Task Sections
// @Description Tasks grouped into MM/YYYY sections for a section list
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param order query string false "asc or desc (default)"
// @Param status query string false "Todo, InProgress, Done or Canceled"
// @Success 200 {object} response.APIResponse
// @Router /tasks/sections [get]
func (h *TaskHandler) Sections(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	status, ok := taskStatusQuery(c)
	if !ok {
		return
	}

	sections, err := h.taskService.TaskSections(c.Request.Context(), a, &service.TaskSectionsInput{
		Order:  grouping.ParseOrder(c.Query("order")),
		Status: status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task sections retrieved successfully", response.NewTaskSections(sections))
}

// Get handles getting a single task
// @Summary Get Task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task retrieved successfully", response.NewTaskResponse(task))
}

// Create handles creating a task
// @Summary Create Task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.TaskRequest true "Task data"
// @Success 201 {object} response.APIResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req request.TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), a, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task created successfully", response.NewTaskResponse(task))
}

// Update handles updating a task
// @Summary Update Task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body request.TaskRequest true "Task data"
// @Success 200 {object} response.APIResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	var req request.TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), a, id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task updated successfully", response.NewTaskResponse(task))
}

// Delete handles deleting a task
// @Summary Delete Task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), a, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func taskStatusQuery(c *gin.Context) (*enum.TaskStatus, bool) {
	s := c.Query("status")
	if s == "" {
		return nil, true
	}
	status, ok := enum.ParseTaskStatus(s)
	if !ok {
		response.Error(c, apperror.NewFieldError("status", "Unknown task status"))
		return nil, false
	}
	return &status, true
}
