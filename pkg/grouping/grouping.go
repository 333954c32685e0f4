// Package grouping buckets flat record lists into time-labelled sections.
package grouping

import (
	"slices"
	"time"
)

// Order is the direction sections are sorted in
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// label layouts tried in turn when ordering sections
var labelLayouts = []string{"01/2006", "02/01/2006", "2006"}

// Section is a group of records sharing a time label
type Section[T any] struct {
	Title string `json:"title"`
	Data  []T    `json:"data"`
}

// ParseOrder maps a query value to an Order, defaulting to Desc
func ParseOrder(s string) Order {
	if Order(s) == Asc {
		return Asc
	}
	return Desc
}

// MonthLabel returns the MM/YYYY label of t
func MonthLabel(t time.Time) string {
	return t.Format("01/2006")
}

// GroupByTimeKey groups records by the label key returns (e.g. "MM/YYYY").
// Records keep their input order inside a section. Sections are sorted by the
// period their label denotes; labels that do not parse go last in first-seen order.
func GroupByTimeKey[T any](records []T, key func(T) string, order Order) []Section[T] {
	sections := make([]Section[T], 0)
	if len(records) == 0 {
		return sections
	}

	index := make(map[string]int)
	for _, r := range records {
		label := key(r)
		i, ok := index[label]
		if !ok {
			i = len(sections)
			index[label] = i
			sections = append(sections, Section[T]{Title: label})
		}
		sections[i].Data = append(sections[i].Data, r)
	}

	slices.SortStableFunc(sections, func(a, b Section[T]) int {
		ta, okA := parseLabel(a.Title)
		tb, okB := parseLabel(b.Title)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		if order == Asc {
			return ta.Compare(tb)
		}
		return tb.Compare(ta)
	})

	return sections
}

func parseLabel(label string) (time.Time, bool) {
	for _, layout := range labelLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
