// Package static provides the in-memory reference data store backing the HTS
// service. All data is fixed at construction; request handling never mutates
// it, so the store needs no locking.
package static

import (
	"strings"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// Data bundles the reference tables a Store is built from.
type Data struct {
	Countries   []domain.Country
	Entries     []domain.HTSEntry
	Popular     []domain.PopularCode
	BrowseNodes []domain.BrowseNode
	DutyRates   map[string]domain.DutyRateRecord
	Agreements  map[string]string
}

// Store is an immutable in-memory port.ReferenceStore.
type Store struct {
	countries   []domain.Country
	entries     []domain.HTSEntry
	popular     []domain.PopularCode
	browseNodes []domain.BrowseNode
	dutyRates   map[string]domain.DutyRateRecord
	agreements  map[string]string
}

// NewStore builds a Store from the given data. Duty-rate and agreement keys
// are normalized to upper-case on the way in so lookups only normalize once.
func NewStore(d Data) *Store {
	rates := make(map[string]domain.DutyRateRecord, len(d.DutyRates))
	for code, rec := range d.DutyRates {
		rates[strings.ToUpper(strings.TrimSpace(code))] = rec
	}
	agreements := make(map[string]string, len(d.Agreements))
	for country, name := range d.Agreements {
		agreements[strings.ToUpper(strings.TrimSpace(country))] = name
	}
	return &Store{
		countries:   d.Countries,
		entries:     d.Entries,
		popular:     d.Popular,
		browseNodes: d.BrowseNodes,
		dutyRates:   rates,
		agreements:  agreements,
	}
}

// NewSeedStore builds a Store from the built-in reference dataset.
func NewSeedStore() *Store {
	return NewStore(Data{
		Countries:   seedCountries,
		Entries:     seedEntries,
		Popular:     seedPopularCodes,
		BrowseNodes: seedBrowseNodes,
		DutyRates:   seedDutyRates,
		Agreements:  seedTradeAgreements,
	})
}

var _ port.ReferenceStore = (*Store)(nil)

func (s *Store) Countries() []domain.Country        { return s.countries }
func (s *Store) Entries() []domain.HTSEntry         { return s.entries }
func (s *Store) PopularCodes() []domain.PopularCode { return s.popular }
func (s *Store) BrowseNodes() []domain.BrowseNode   { return s.browseNodes }

// DutyRate returns the duty-rate record for an HTS code. The code is matched
// after upper-case trim normalization.
func (s *Store) DutyRate(code string) (domain.DutyRateRecord, bool) {
	rec, ok := s.dutyRates[strings.ToUpper(strings.TrimSpace(code))]
	return rec, ok
}

// DutyRateCount reports how many duty-rate records are loaded.
func (s *Store) DutyRateCount() int { return len(s.dutyRates) }

// TradeAgreement returns the trade agreement covering a country of origin.
func (s *Store) TradeAgreement(countryCode string) (string, bool) {
	name, ok := s.agreements[strings.ToUpper(strings.TrimSpace(countryCode))]
	return name, ok
}
