package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dealerhub/sales-api/internal/domain/entity"
	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/internal/domain/repository"
	"github.com/dealerhub/sales-api/pkg/format"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Ranks(t *testing.T) {
	an := &entity.User{ID: uuid.New(), FirstName: "An", LastName: "Nguyễn"}
	binh := &entity.User{ID: uuid.New(), FirstName: "Bình", LastName: "Trần"}
	chi := &entity.User{ID: uuid.New(), Email: "chi@dealer.vn"}

	quotations := newStubQuotationRepo()
	quotations.sums = []repository.SalesSum{
		{UserID: binh.ID, Count: 1, Total: 900_000_000},
		{UserID: an.ID, Count: 2, Total: 1_800_000_000},
		{UserID: chi.ID, Count: 1, Total: 900_000_000},
	}
	svc := NewLeaderboardService(quotations, newStubUserRepo(an, binh, chi))

	board, err := svc.MonthlyLeaderboard(context.Background(), "03/2024")
	require.NoError(t, err)

	assert.Equal(t, "03/2024", board.Month)
	assert.Equal(t, enum.QuotationStatusAccepted, quotations.sumStatus)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, format.Location), quotations.sumFrom)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, format.Location), quotations.sumTo)

	require.Len(t, board.Entries, 3)
	assert.Equal(t, LeaderboardEntry{Rank: 1, UserID: an.ID, Name: "Nguyễn An", Count: 2, Total: 1_800_000_000}, board.Entries[0])
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, "Trần Bình", board.Entries[1].Name)
	assert.Equal(t, 2, board.Entries[2].Rank, "ties share a rank")
	assert.Equal(t, "chi@dealer.vn", board.Entries[2].Name)
}

func TestLeaderboardService_CurrentMonth(t *testing.T) {
	quotations := newStubQuotationRepo()
	svc := NewLeaderboardService(quotations, newStubUserRepo())
	svc.now = func() time.Time { return time.Date(2024, time.December, 31, 18, 0, 0, 0, time.UTC) }

	board, err := svc.MonthlyLeaderboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "01/2025", board.Month)
	assert.NotNil(t, board.Entries)
	assert.Empty(t, board.Entries)
}

func TestLeaderboardService_Errors(t *testing.T) {
	quotations := newStubQuotationRepo()
	svc := NewLeaderboardService(quotations, newStubUserRepo())

	_, err := svc.MonthlyLeaderboard(context.Background(), "13/2024")
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(err))

	quotations.err = errors.New("timeout")
	_, err = svc.MonthlyLeaderboard(context.Background(), "03/2024")
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
}
