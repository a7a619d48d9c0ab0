package service

import (
	"sort"
	"strings"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// CountryFilter narrows the country listing.
type CountryFilter struct {
	Region             string
	TradeAgreementOnly bool
	Search             string
}

// CountryList is the filtered country listing with dataset-wide metadata.
// Regions and TradeAgreements always describe the unfiltered dataset.
type CountryList struct {
	Countries       []domain.Country `json:"countries"`
	Total           int              `json:"total"`
	Regions         []string         `json:"regions"`
	TradeAgreements []string         `json:"trade_agreements"`
}

// CountryService lists countries of origin.
type CountryService interface {
	List(filter CountryFilter) *CountryList
}

type countryService struct {
	store port.ReferenceStore
}

// NewCountryService creates a new CountryService implementation.
func NewCountryService(store port.ReferenceStore) CountryService {
	return &countryService{store: store}
}

func (s *countryService) List(filter CountryFilter) *CountryList {
	all := s.store.Countries()

	filtered := make([]domain.Country, 0, len(all))
	for _, c := range all {
		if filter.Region != "" && !strings.EqualFold(c.Region, filter.Region) {
			continue
		}
		if filter.TradeAgreementOnly && c.TradeAgreement == "" {
			continue
		}
		if filter.Search != "" &&
			!containsFold(c.Name, filter.Search) && !containsFold(c.Code, filter.Search) {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	regions := make([]string, 0, len(all))
	agreements := make([]string, 0, len(all))
	for _, c := range all {
		regions = append(regions, c.Region)
		agreements = append(agreements, c.TradeAgreement)
	}

	return &CountryList{
		Countries:       filtered,
		Total:           len(filtered),
		Regions:         distinctSorted(regions),
		TradeAgreements: distinctSorted(agreements),
	}
}
