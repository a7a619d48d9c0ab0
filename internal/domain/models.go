package domain

import "time"

// Country is a static reference entity used for filtering and for resolving
// trade-agreement metadata. Immutable at runtime.
type Country struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Region         string `json:"region"`
	TradeAgreement string `json:"trade_agreement,omitempty"`
}

// HTSEntry is the atomic tariff record. The chapter, heading, and subheading
// fields are successive prefixes of the numeric form of HTSCode.
type HTSEntry struct {
	HTSCode     string `json:"hts_code"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Chapter     string `json:"chapter"`
	Heading     string `json:"heading"`
	Subheading  string `json:"subheading"`
	Unit        string `json:"unit"`
	GeneralRate string `json:"general_rate"`
	SpecialRate string `json:"special_rate"`
}

// PopularCode is an HTSEntry-like record annotated with how frequently it is
// used, for ranked "popular" listings.
type PopularCode struct {
	HTSCode        string         `json:"hts_code"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	UsageFrequency UsageFrequency `json:"usage_frequency"`
	GeneralRate    string         `json:"general_rate"`
	Unit           string         `json:"unit"`
}

// BrowseNode is a node in the chapter → heading → subheading → tariff-line
// classification hierarchy. Parent/child relations are implicit via shared
// code prefixes; lookups filter the flat node list by matching prefix fields.
type BrowseNode struct {
	Type        BrowseLevel `json:"type"`
	Code        string      `json:"code,omitempty"`
	HTSCode     string      `json:"hts_code,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Level       int         `json:"level"`
	Chapter     string      `json:"chapter,omitempty"`
	Heading     string      `json:"heading,omitempty"`
	Subheading  string      `json:"subheading,omitempty"`
}

// SortKey returns whichever of HTSCode/Code is present, for ordering.
func (n *BrowseNode) SortKey() string {
	if n.HTSCode != "" {
		return n.HTSCode
	}
	return n.Code
}

// DutyRateRecord holds the general rate and per-country special rates for one
// normalized HTS code. A country-specific rate overrides the "default" special
// rate, which overrides the general rate.
type DutyRateRecord struct {
	GeneralRate  string            `json:"general_rate"`
	SpecialRates map[string]string `json:"special_rates"`
}

// DutyRateResult is the computed outcome of a duty-rate calculation. It is
// constructed fresh per request and never persisted.
type DutyRateResult struct {
	HTSCode         string        `json:"hts_code"`
	CountryOfOrigin string        `json:"country_of_origin"`
	GeneralRate     string        `json:"general_rate"`
	ApplicableRate  string        `json:"applicable_rate"`
	IsPreferential  bool          `json:"is_preferential"`
	IsDutyFree      bool          `json:"is_duty_free"`
	TradeAgreement  string        `json:"trade_agreement,omitempty"`
	Notes           []string      `json:"notes"`
	Requirements    []string      `json:"requirements"`
	Estimate        *DutyEstimate `json:"estimate,omitempty"`
	CalculatedAt    time.Time     `json:"calculated_at"`
}

// DutyEstimate holds an estimated duty amount for an ad-valorem rate applied
// to a declared customs value. Only produced when the applicable rate is a
// plain percentage.
type DutyEstimate struct {
	CustomsValue  string `json:"customs_value"`
	EstimatedDuty string `json:"estimated_duty"`
	Currency      string `json:"currency"`
}

// CountryRateProfile describes the preferential treatment a country of origin
// receives under the trade-agreement heuristic shared by search annotation
// and code lookup.
type CountryRateProfile struct {
	CountryOfOrigin string `json:"country_of_origin"`
	Agreement       string `json:"agreement"`
	ApplicableRate  string `json:"applicable_rate"`
	Note            string `json:"note"`
}

// CodeLookupResult is the response payload for a single-code lookup.
type CodeLookupResult struct {
	HTSEntry
	Found       bool                `json:"found"`
	CountryInfo *CountryRateProfile `json:"country_info,omitempty"`
	Notes       []string            `json:"notes"`
	LookedUpAt  time.Time           `json:"looked_up_at"`
}

// SearchResult is one ranked search hit, optionally annotated with a
// country-specific rate profile.
type SearchResult struct {
	HTSEntry
	CountrySpecificRate *CountryRateProfile `json:"country_specific_rate,omitempty"`
}

// RefreshReport is the structured outcome of the simulated data refresh. The
// reference dataset is static, so the counters are always zero; the report
// exists so operational tooling has a stable shape to consume.
type RefreshReport struct {
	StartedAt         time.Time      `json:"started_at"`
	CompletedAt       time.Time      `json:"completed_at"`
	UpdateCounts      map[string]int `json:"update_counts"`
	DataSource        string         `json:"data_source"`
	Notes             []string       `json:"notes"`
	CacheCleared      bool           `json:"cache_cleared"`
	AffectedEndpoints []string       `json:"affected_endpoints"`
}

// CapabilityStatus reports whether one service capability is operational and
// how many backing records it has.
type CapabilityStatus struct {
	Operational bool `json:"operational"`
	RecordCount int  `json:"record_count"`
}

// ServiceStatus is the operational snapshot returned by the status action.
type ServiceStatus struct {
	Service      string                      `json:"service"`
	Version      string                      `json:"version"`
	Timestamp    time.Time                   `json:"timestamp"`
	UptimeSecs   int64                       `json:"uptime_seconds"`
	Capabilities map[string]CapabilityStatus `json:"capabilities"`
	Features     map[string]bool             `json:"features"`
	Limits       UsageLimits                 `json:"limits"`
}

// UsageLimits reports the fixed nominal limits advertised by the status action.
type UsageLimits struct {
	MaxSearchResults int    `json:"max_search_results"`
	RateLimit        string `json:"rate_limit"`
	CacheDuration    string `json:"cache_duration"`
}
