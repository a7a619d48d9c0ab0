package service

import (
	"sort"
	"strings"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// SearchQuery describes one search over the HTS database. A non-positive
// Limit disables truncation.
type SearchQuery struct {
	Query           string
	Type            domain.SearchType
	Limit           int
	CountryOfOrigin string
	Category        string
}

// SearchResultSet is the ranked result set. Categories and DatabaseSize
// always describe the full database.
type SearchResultSet struct {
	Results         []domain.SearchResult `json:"results"`
	TotalMatched    int                   `json:"total_matched"`
	SearchTerm      string                `json:"search_term"`
	SearchType      domain.SearchType     `json:"search_type"`
	CountryOfOrigin string                `json:"country_of_origin,omitempty"`
	Categories      []string              `json:"categories"`
	DatabaseSize    int                   `json:"database_size"`
}

// SearchService matches free-text or code queries against the HTS database
// and ranks results by relevance.
type SearchService interface {
	Search(q SearchQuery) *SearchResultSet
}

type searchService struct {
	store port.ReferenceStore
}

// NewSearchService creates a new SearchService implementation.
func NewSearchService(store port.ReferenceStore) SearchService {
	return &searchService{store: store}
}

func (s *searchService) Search(q SearchQuery) *SearchResultSet {
	entries := s.store.Entries()

	categories := make([]string, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, e.Category)
	}

	out := &SearchResultSet{
		Results:         []domain.SearchResult{},
		SearchTerm:      strings.TrimSpace(q.Query),
		SearchType:      q.Type,
		CountryOfOrigin: strings.ToUpper(strings.TrimSpace(q.CountryOfOrigin)),
		Categories:      distinctSorted(categories),
		DatabaseSize:    len(entries),
	}
	if out.SearchType == "" {
		out.SearchType = domain.SearchByDescription
	}

	// Queries shorter than 2 trimmed characters short-circuit to an empty
	// result set, not an error.
	term := strings.ToLower(out.SearchTerm)
	if len(term) < 2 {
		return out
	}

	matched := make([]domain.HTSEntry, 0)
	for _, e := range entries {
		if s.matches(&e, out.SearchType, term) {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ri := searchRank(&matched[i], out.SearchType, term)
		rj := searchRank(&matched[j], out.SearchType, term)
		if ri != rj {
			return ri < rj
		}
		return matched[i].HTSCode < matched[j].HTSCode
	})

	if q.Category != "" {
		kept := matched[:0]
		for _, e := range matched {
			if strings.EqualFold(e.Category, q.Category) {
				kept = append(kept, e)
			}
		}
		matched = kept
	}

	out.TotalMatched = len(matched)
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	for _, e := range matched {
		r := domain.SearchResult{HTSEntry: e}
		if out.CountryOfOrigin != "" {
			profile := CountryRateProfile(out.CountryOfOrigin)
			r.CountrySpecificRate = &profile
		}
		out.Results = append(out.Results, r)
	}
	return out
}

func (s *searchService) matches(e *domain.HTSEntry, st domain.SearchType, term string) bool {
	if st == domain.SearchByCode {
		code := strings.ToLower(e.HTSCode)
		return strings.Contains(code, term) ||
			strings.Contains(stripDots(code), stripDots(term))
	}
	return containsFold(e.Description, term) || containsFold(e.Category, term)
}

// searchRank orders exact code matches (code search) or description-prefix
// matches (description search) ahead of the rest.
func searchRank(e *domain.HTSEntry, st domain.SearchType, term string) int {
	if st == domain.SearchByCode {
		if strings.EqualFold(e.HTSCode, term) {
			return 0
		}
		return 1
	}
	if strings.HasPrefix(strings.ToLower(e.Description), term) {
		return 0
	}
	return 1
}
