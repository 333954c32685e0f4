package grouping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Time string
}

func byTime(r record) string { return r.Time }

func titles[T any](sections []Section[T]) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Title)
	}
	return out
}

func TestGroupByTimeKey_Empty(t *testing.T) {
	got := GroupByTimeKey([]record{}, byTime, Desc)
	require.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, GroupByTimeKey[record](nil, byTime, Asc))
}

func TestGroupByTimeKey_Order(t *testing.T) {
	records := []record{{ID: 1, Time: "01/2024"}, {ID: 2, Time: "02/2024"}}

	assert.Equal(t, []string{"02/2024", "01/2024"}, titles(GroupByTimeKey(records, byTime, Desc)))
	assert.Equal(t, []string{"01/2024", "02/2024"}, titles(GroupByTimeKey(records, byTime, Asc)))
}

func TestGroupByTimeKey_SortsAcrossYears(t *testing.T) {
	records := []record{
		{ID: 1, Time: "12/2023"},
		{ID: 2, Time: "01/2024"},
		{ID: 3, Time: "11/2023"},
	}

	got := GroupByTimeKey(records, byTime, Desc)
	assert.Equal(t, []string{"01/2024", "12/2023", "11/2023"}, titles(got))
}

func TestGroupByTimeKey_StableWithinSection(t *testing.T) {
	records := []record{
		{ID: 1, Time: "03/2024"},
		{ID: 2, Time: "04/2024"},
		{ID: 3, Time: "03/2024"},
		{ID: 4, Time: "04/2024"},
		{ID: 5, Time: "03/2024"},
	}

	got := GroupByTimeKey(records, byTime, Asc)
	require.Len(t, got, 2)
	assert.Equal(t, []record{{1, "03/2024"}, {3, "03/2024"}, {5, "03/2024"}}, got[0].Data)
	assert.Equal(t, []record{{2, "04/2024"}, {4, "04/2024"}}, got[1].Data)
}

func TestGroupByTimeKey_UnparseableLabelsLast(t *testing.T) {
	records := []record{
		{ID: 1, Time: "chưa hẹn"},
		{ID: 2, Time: "01/2024"},
		{ID: 3, Time: ""},
		{ID: 4, Time: "05/2024"},
	}

	got := GroupByTimeKey(records, byTime, Desc)
	assert.Equal(t, []string{"05/2024", "01/2024", "chưa hẹn", ""}, titles(got))
}

func TestGroupByTimeKey_DayAndYearLabels(t *testing.T) {
	days := []record{{ID: 1, Time: "02/03/2024"}, {ID: 2, Time: "01/03/2024"}}
	assert.Equal(t, []string{"01/03/2024", "02/03/2024"}, titles(GroupByTimeKey(days, byTime, Asc)))

	years := []record{{ID: 1, Time: "2023"}, {ID: 2, Time: "2025"}}
	assert.Equal(t, []string{"2025", "2023"}, titles(GroupByTimeKey(years, byTime, Desc)))
}

func TestMonthLabelAndParseOrder(t *testing.T) {
	assert.Equal(t, "07/2025", MonthLabel(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Asc, ParseOrder("asc"))
	assert.Equal(t, Desc, ParseOrder("desc"))
	assert.Equal(t, Desc, ParseOrder(""))
}
