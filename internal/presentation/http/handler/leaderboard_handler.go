package handler

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the monthly sales ranking
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Get returns the leaderboard for a month
// @Summary Monthly Leaderboard
// @Description Salespeople ranked by accepted quotation value
// @Tags leaderboard
// @Security BearerAuth
// @Produce json
// @Param month query string false "MM/YYYY, defaults to the current month"
// @Success 200 {object} response.APIResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	board, err := h.leaderboardService.MonthlyLeaderboard(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leaderboard retrieved successfully", response.NewLeaderboardResponse(board))
}
