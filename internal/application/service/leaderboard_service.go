package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/dealerhub/sales-api/pkg/grouping"
	"github.com/google/uuid"
)

// LeaderboardService ranks salespeople by accepted quotation value
type LeaderboardService struct {
	quotationRepo repository.QuotationRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(quotationRepo repository.QuotationRepository, userRepo repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{
		quotationRepo: quotationRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// LeaderboardEntry is one salesperson's standing for a month
type LeaderboardEntry struct {
	Rank   int
	UserID uuid.UUID
	Name   string
	Count  int64
	Total  int64
}

// Leaderboard is the ranking for one month
type Leaderboard struct {
	Month   string
	Entries []LeaderboardEntry
}

// MonthlyLeaderboard ranks accepted quotations dated in month (MM/YYYY, empty for
// the current month) by grand total. Equal totals share a rank.
func (s *LeaderboardService) MonthlyLeaderboard(ctx context.Context, month string) (*Leaderboard, error) {
	from, err := s.monthStart(month)
	if err != nil {
		return nil, err
	}
	to := from.AddDate(0, 1, 0)

	sums, err := s.quotationRepo.SumByUser(ctx, enum.QuotationStatusAccepted, from, to)
	if err != nil {
		return nil, apperror.Internal("Failed to total sales", err)
	}

	slices.SortStableFunc(sums, func(a, b repository.SalesSum) int {
		return cmp.Compare(b.Total, a.Total)
	})

	names, err := s.userNames(ctx, sums)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(sums))
	for i, sum := range sums {
		rank := i + 1
		if i > 0 && sum.Total == sums[i-1].Total {
			rank = entries[i-1].Rank
		}
		entries = append(entries, LeaderboardEntry{
			Rank:   rank,
			UserID: sum.UserID,
			Name:   names[sum.UserID],
			Count:  sum.Count,
			Total:  sum.Total,
		})
	}

	return &Leaderboard{Month: grouping.MonthLabel(from), Entries: entries}, nil
}

func (s *LeaderboardService) monthStart(month string) (time.Time, error) {
	if month == "" {
		now := s.now().In(format.Location)
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, format.Location), nil
	}
	t, ok := format.ParseDisplayDate("01/" + month)
	if !ok {
		return time.Time{}, apperror.NewFieldError("month", "Month must be MM/YYYY")
	}
	return t, nil
}

func (s *LeaderboardService) userNames(ctx context.Context, sums []repository.SalesSum) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(sums))
	if len(sums) == 0 {
		return names, nil
	}

	ids := make([]uuid.UUID, 0, len(sums))
	for _, sum := range sums {
		ids = append(ids, sum.UserID)
	}

	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal("Failed to load salespeople", err)
	}
	for i := range users {
		names[users[i].ID] = displayName(&users[i])
	}
	return names, nil
}

func displayName(u *entity.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}
