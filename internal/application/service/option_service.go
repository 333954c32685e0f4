package service

import (
	"sort"

	"github.com/dealerhub/sales-api/internal/domain/enum"
	"github.com/dealerhub/sales-api/pkg/apperror"
	"github.com/dealerhub/sales-api/pkg/textnorm"
	"github.com/dealerhub/sales-api/pkg/wheel"
)

// OptionService serves picker options built from the constant dictionaries
// and the dealer's configured catalog
type OptionService struct {
	sources map[string]func() []wheel.Item
}

// NewOptionService creates a new option service. vehicleModels keeps its
// configured order; showrooms are listed by code.
func NewOptionService(vehicleModels wheel.Dictionary, showrooms map[string]string) *OptionService {
	return &OptionService{
		sources: map[string]func() []wheel.Item{
			"customer-sources":   dictionary(enum.CustomerSourceDictionary),
			"customer-statuses":  dictionary(enum.CustomerStatusDictionary),
			"quotation-statuses": dictionary(enum.QuotationStatusDictionary),
			"task-statuses":      dictionary(enum.TaskStatusDictionary),
			"discount-kinds":     dictionary(enum.DiscountKindDictionary),
			"formalities":        dictionary(enum.FormalityDictionary),
			"vehicle-colors":     func() []wheel.Item { return wheel.MapFromArray(enum.VehicleColors) },
			"vehicle-models":     dictionary(vehicleModels),
			"showrooms":          func() []wheel.Item { return wheel.MapFromMap(showrooms) },
		},
	}
}

func dictionary(d wheel.Dictionary) func() []wheel.Item {
	return func() []wheel.Item { return wheel.MapFromDictionary(d) }
}

// Names lists the available option sets
func (s *OptionService) Names() []string {
	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the picker items of the named option set whose label
// contains query, ignoring case and Vietnamese accents. An empty query
// returns every item.
func (s *OptionService) Options(name, query string) ([]wheel.Item, error) {
	build, ok := s.sources[name]
	if !ok {
		return nil, apperror.NewNotFoundError("Option set")
	}

	items := build()
	if query == "" {
		return items, nil
	}

	matched := make([]wheel.Item, 0, len(items))
	for _, item := range items {
		if textnorm.Contains(item.Label, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
