package service

import (
	"sort"
	"strings"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// PopularFilter narrows the popular-codes listing. A non-positive Limit
// disables truncation.
type PopularFilter struct {
	Limit          int
	Category       string
	UsageFrequency string
	Search         string
}

// PopularList is the ranked popular-codes listing. Categories, Frequencies,
// and TotalAvailable always describe the unfiltered dataset.
type PopularList struct {
	Codes          []domain.PopularCode `json:"codes"`
	TotalMatched   int                  `json:"total_matched"`
	Categories     []string             `json:"categories"`
	Frequencies    []string             `json:"frequencies"`
	TotalAvailable int                  `json:"total_available"`
}

// PopularService lists frequently used HTS codes ranked by usage.
type PopularService interface {
	List(filter PopularFilter) *PopularList
}

type popularService struct {
	store port.ReferenceStore
}

// NewPopularService creates a new PopularService implementation.
func NewPopularService(store port.ReferenceStore) PopularService {
	return &popularService{store: store}
}

func (s *popularService) List(filter PopularFilter) *PopularList {
	all := s.store.PopularCodes()

	filtered := make([]domain.PopularCode, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.UsageFrequency != "" && !strings.EqualFold(string(p.UsageFrequency), filter.UsageFrequency) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(p.HTSCode, filter.Search) &&
			!containsFold(p.Description, filter.Search) &&
			!containsFold(p.Category, filter.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	// Frequency rank descending, then HTS code ascending. Unrecognized
	// frequencies rank 0 and sort last.
	sort.SliceStable(filtered, func(i, j int) bool {
		ri, rj := filtered[i].UsageFrequency.Rank(), filtered[j].UsageFrequency.Rank()
		if ri != rj {
			return ri > rj
		}
		return filtered[i].HTSCode < filtered[j].HTSCode
	})

	total := len(filtered)
	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}

	categories := make([]string, 0, len(all))
	frequencies := make([]string, 0, len(all))
	for _, p := range all {
		categories = append(categories, p.Category)
		frequencies = append(frequencies, string(p.UsageFrequency))
	}

	return &PopularList{
		Codes:          filtered,
		TotalMatched:   total,
		Categories:     distinctSorted(categories),
		Frequencies:    distinctSorted(frequencies),
		TotalAvailable: len(all),
	}
}
