package handler

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OptionHandler serves the constant picker lists
type OptionHandler struct {
	optionService *service.OptionService
}

// NewOptionHandler creates a new option handler
func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

// List returns the names of the available option sets
// @Summary List Option Sets
// @Tags options
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /options [get]
func (h *OptionHandler) List(c *gin.Context) {
	response.OK(c, "Option sets retrieved successfully", h.optionService.Names())
}

// Get returns the {label, value} items of one option set
// @Summary Get Option Set
// @Tags options
// @Security BearerAuth
// @Produce json
// @Param name path string true "Option set name, e.g. customer-statuses"
// @Param q query string false "Keep items whose label contains q, ignoring accents"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /options/{name} [get]
func (h *OptionHandler) Get(c *gin.Context) {
	items, err := h.optionService.Options(c.Param("name"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Options retrieved successfully", items)
}
