package service

import (
	"sort"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// BrowseQuery pages through the classification hierarchy. Each non-empty
// filter matches nodes whose corresponding field equals the value, or whose
// own code equals the value. A non-positive Limit disables pagination.
type BrowseQuery struct {
	Offset         int
	Limit          int
	IncludeHeaders bool
	Level          string
	Chapter        string
	Heading        string
	Subheading     string
}

// BrowsePage is one page of hierarchy nodes. Chapters always describes the
// unfiltered dataset.
type BrowsePage struct {
	Nodes       []domain.BrowseNode  `json:"nodes"`
	Total       int                  `json:"total"`
	Offset      int                  `json:"offset"`
	Limit       int                  `json:"limit"`
	Returned    int                  `json:"returned"`
	HasMore     bool                 `json:"has_more"`
	Filters     map[string]string    `json:"filters"`
	ValidLevels []domain.BrowseLevel `json:"valid_levels"`
	Chapters    []string             `json:"chapters"`
}

// BrowseService navigates the chapter → heading → subheading → tariff-line tree.
type BrowseService interface {
	Browse(q BrowseQuery) *BrowsePage
}

type browseService struct {
	store port.ReferenceStore
}

// NewBrowseService creates a new BrowseService implementation.
func NewBrowseService(store port.ReferenceStore) BrowseService {
	return &browseService{store: store}
}

func (s *browseService) Browse(q BrowseQuery) *BrowsePage {
	all := s.store.BrowseNodes()

	filtered := make([]domain.BrowseNode, 0, len(all))
	for _, n := range all {
		if !q.IncludeHeaders && n.Type != domain.LevelTariffLine {
			continue
		}
		if !matchNodeField(q.Level, string(n.Type), &n) {
			continue
		}
		if !matchNodeField(q.Chapter, n.Chapter, &n) {
			continue
		}
		if !matchNodeField(q.Heading, n.Heading, &n) {
			continue
		}
		if !matchNodeField(q.Subheading, n.Subheading, &n) {
			continue
		}
		filtered = append(filtered, n)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].SortKey() < filtered[j].SortKey()
	})

	total := len(filtered)
	page := filtered
	if q.Offset > 0 {
		if q.Offset >= len(page) {
			page = page[:0]
		} else {
			page = page[q.Offset:]
		}
	}
	if q.Limit > 0 && len(page) > q.Limit {
		page = page[:q.Limit]
	}

	filters := map[string]string{}
	for key, val := range map[string]string{
		"level":      q.Level,
		"chapter":    q.Chapter,
		"heading":    q.Heading,
		"subheading": q.Subheading,
	} {
		if val != "" {
			filters[key] = val
		}
	}

	chapters := make([]string, 0, len(all))
	for _, n := range all {
		if n.Type == domain.LevelChapter {
			chapters = append(chapters, n.Code)
		}
	}

	return &BrowsePage{
		Nodes:       page,
		Total:       total,
		Offset:      q.Offset,
		Limit:       q.Limit,
		Returned:    len(page),
		HasMore:     q.Offset+len(page) < total,
		Filters:     filters,
		ValidLevels: domain.BrowseLevels,
		Chapters:    distinctSorted(chapters),
	}
}

// matchNodeField passes when the filter is empty, the node field equals the
// filter, or the node's own code equals the filter. The last clause lets a
// bare code value match nodes at any level carrying that code.
func matchNodeField(filter, field string, n *domain.BrowseNode) bool {
	return filter == "" || field == filter || n.SortKey() == filter
}
