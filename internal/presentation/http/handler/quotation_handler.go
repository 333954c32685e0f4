package handler

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/request"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/response"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// List handles listing quotations
// @Summary List Quotations
// @Description Get quotations with pagination and filtering
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Reference or vehicle model"
// @Param status query string false "Draft, Sent, Accepted or Canceled"
// @Param customer_id query string false "Customer filter"
// @Param sort_by query string false "date, grand_total or created_at"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} response.APIResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	input := &service.ListQuotationsInput{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		CustomerID: optionalUUID(c, "customer_id"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if s := c.Query("status"); s != "" {
		status, valid := enum.ParseQuotationStatus(s)
		if !valid {
			response.Error(c, apperror.NewFieldError("status", "Unknown quotation status"))
			return
		}
		input.Status = &status
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), a, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Quotations retrieved successfully", pagination.Map(result, func(q entity.Quotation) response.QuotationResponse {
		return response.NewQuotationResponse(&q)
	}))
}

// Get handles getting a single quotation
// @Summary Get Quotation
// @Tags quotations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", response.NewQuotationResponse(quotation))
}

// Preview computes totals without saving
// @Summary Preview Quotation
// @Description Compute line totals and the grand total for an unsaved quotation
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.QuotationPricingRequest true "Pricing data"
// @Success 200 {object} response.APIResponse
// @Router /quotations/preview [post]
func (h *QuotationHandler) Preview(c *gin.Context) {
	var req request.QuotationPricingRequest
	if !bindJSON(c, &req) {
		return
	}

	breakdown, err := h.quotationService.PreviewQuotation(req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation totals computed", response.NewQuotationPreviewResponse(breakdown))
}

// Create handles creating a quotation
// @Summary Create Quotation
// @Description Save a draft quotation. Send an Idempotency-Key header to make retries safe.
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-generated retry key"
// @Param request body request.QuotationRequest true "Quotation data"
// @Success 201 {object} response.APIResponse
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req request.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), a, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", response.NewQuotationResponse(quotation))
}

// Update handles updating a quotation
// @Summary Update Quotation
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.QuotationRequest true "Quotation data"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	var req request.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), a, id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", response.NewQuotationResponse(quotation))
}

// UpdateStatus moves a quotation through its lifecycle
// @Summary Update Quotation Status
// @Tags quotations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param request body request.QuotationStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /quotations/{id}/status [put]
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	var req request.QuotationStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), a, id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated", response.NewQuotationResponse(quotation))
}

// Delete handles deleting a quotation
// @Summary Delete Quotation
// @Tags quotations
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 204
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), a, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
