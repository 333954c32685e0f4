package service

import (
	"net/http"
	"testing"

	"github.com/dealerhub/sales-api/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogOptionService() *OptionService {
	return NewOptionService(
		wheel.Dictionary{
			{Code: "vf8", Label: "VinFast VF 8"},
			{Code: "cx5", Label: "Mazda CX-5"},
		},
		map[string]string{"hn-cg": "Cầu Giấy", "hcm-q7": "Quận 7"},
	)
}

func TestOptionService_Options(t *testing.T) {
	svc := newCatalogOptionService()

	statuses, err := svc.Options("quotation-statuses", "")
	require.NoError(t, err)
	assert.Equal(t, []wheel.Item{
		{Label: "Nháp", Value: "Draft"},
		{Label: "Đã gửi", Value: "Sent"},
		{Label: "Đã chốt", Value: "Accepted"},
		{Label: "Đã hủy", Value: "Canceled"},
	}, statuses)

	colors, err := svc.Options("vehicle-colors", "")
	require.NoError(t, err)
	assert.Equal(t, wheel.Item{Label: "Trắng", Value: "Trắng"}, colors[0])

	formalities, err := svc.Options("formalities", "")
	require.NoError(t, err)
	assert.Equal(t, "sell", formalities[0].Value)

	_, err = svc.Options("planets", "")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestOptionService_CatalogSets(t *testing.T) {
	svc := newCatalogOptionService()

	models, err := svc.Options("vehicle-models", "")
	require.NoError(t, err)
	assert.Equal(t, []wheel.Item{
		{Label: "VinFast VF 8", Value: "vf8"},
		{Label: "Mazda CX-5", Value: "cx5"},
	}, models)

	showrooms, err := svc.Options("showrooms", "")
	require.NoError(t, err)
	assert.Equal(t, []wheel.Item{
		{Label: "Quận 7", Value: "hcm-q7"},
		{Label: "Cầu Giấy", Value: "hn-cg"},
	}, showrooms)
}

func TestOptionService_OptionsFiltersByLabel(t *testing.T) {
	svc := newCatalogOptionService()

	tests := []struct {
		name  string
		set   string
		query string
		want  []string
	}{
		{name: "accent insensitive", set: "vehicle-colors", query: "trang", want: []string{"Trắng"}},
		{name: "stroke d", set: "vehicle-colors", query: "DEN", want: []string{"Đen"}},
		{name: "substring", set: "vehicle-models", query: "cx", want: []string{"cx5"}},
		{name: "no match", set: "showrooms", query: "Thủ Đức", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.Options(tt.set, tt.query)
			require.NoError(t, err)

			values := make([]string, 0, len(items))
			for _, item := range items {
				values = append(values, item.Value)
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestOptionService_Names(t *testing.T) {
	svc := newCatalogOptionService()
	names := svc.Names()
	assert.Len(t, names, 9)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		items, err := svc.Options(name, "")
		require.NoError(t, err, name)
		assert.NotEmpty(t, items, name)
	}
}

func TestOptionService_EmptyCatalog(t *testing.T) {
	svc := NewOptionService(nil, nil)

	models, err := svc.Options("vehicle-models", "")
	require.NoError(t, err)
	assert.Empty(t, models)
}
