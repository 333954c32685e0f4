package response

import (
	"github.com/dealerhub/sales-api/internal/application/service"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/google/uuid"
)

// LeaderboardEntryResponse is one ranked salesperson
type LeaderboardEntryResponse struct {
	Rank      int       `json:"rank"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Count     int64     `json:"count"`
	Total     int64     `json:"total"`
	TotalText string    `json:"total_text"`
}

// LeaderboardResponse is the monthly ranking plus the showroom total
type LeaderboardResponse struct {
	Month     string                     `json:"month"`
	Entries   []LeaderboardEntryResponse `json:"entries"`
	Total     int64                      `json:"total"`
	TotalText string                     `json:"total_text"`
}

// NewLeaderboardResponse maps a computed leaderboard
func NewLeaderboardResponse(b *service.Leaderboard) LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, 0, len(b.Entries))
	var total int64
	for _, e := range b.Entries {
		total += e.Total
		entries = append(entries, LeaderboardEntryResponse{
			Rank:      e.Rank,
			UserID:    e.UserID,
			Name:      e.Name,
			Count:     e.Count,
			Total:     e.Total,
			TotalText: format.FormatMoney(e.Total),
		})
	}
	return LeaderboardResponse{
		Month:     b.Month,
		Entries:   entries,
		Total:     total,
		TotalText: format.FormatMoney(total),
	}
}
