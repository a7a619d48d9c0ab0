package service

import (
	"time"

	"ftzops/internal/config"
	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// SystemService reports operational status and performs the simulated data
// refresh.
type SystemService interface {
	Status() *domain.ServiceStatus
	Refresh() *domain.RefreshReport
}

type systemService struct {
	store     port.ReferenceStore
	svcCfg    config.ServiceConfig
	limitsCfg config.LimitsConfig
	startedAt time.Time
}

// NewSystemService creates a new SystemService implementation.
func NewSystemService(store port.ReferenceStore, svcCfg config.ServiceConfig, limitsCfg config.LimitsConfig) SystemService {
	return &systemService{
		store:     store,
		svcCfg:    svcCfg,
		limitsCfg: limitsCfg,
		startedAt: time.Now().UTC(),
	}
}

func (s *systemService) Status() *domain.ServiceStatus {
	now := time.Now().UTC()
	return &domain.ServiceStatus{
		Service:    s.svcCfg.Name,
		Version:    s.svcCfg.Version,
		Timestamp:  now,
		UptimeSecs: int64(now.Sub(s.startedAt).Seconds()),
		Capabilities: map[string]domain.CapabilityStatus{
			"countries":        {Operational: len(s.store.Countries()) > 0, RecordCount: len(s.store.Countries())},
			"popular":          {Operational: len(s.store.PopularCodes()) > 0, RecordCount: len(s.store.PopularCodes())},
			"search":           {Operational: len(s.store.Entries()) > 0, RecordCount: len(s.store.Entries())},
			"duty-calculation": {Operational: s.store.DutyRateCount() > 0, RecordCount: s.store.DutyRateCount()},
		},
		Features: map[string]bool{
			"country_filtering":    true,
			"popular_codes":        true,
			"relevance_search":     true,
			"hierarchical_browse":  true,
			"duty_calculation":     true,
			"duty_estimation":      true,
			"simulated_refresh":    true,
			"official_hts_sync":    false,
			"legal_determinations": false,
		},
		Limits: domain.UsageLimits{
			MaxSearchResults: s.limitsCfg.MaxSearchResults,
			RateLimit:        "100 requests/minute",
			CacheDuration:    "24h",
		},
	}
}

// Refresh is a documented no-op: the reference dataset is compiled into the
// binary, so nothing is fetched or mutated. The report shape matches what a
// real refresh would produce so operational tooling stays stable.
func (s *systemService) Refresh() *domain.RefreshReport {
	now := time.Now().UTC()
	return &domain.RefreshReport{
		StartedAt:   now,
		CompletedAt: now,
		UpdateCounts: map[string]int{
			"countries":     0,
			"hts_entries":   0,
			"popular_codes": 0,
			"duty_rates":    0,
		},
		DataSource: "Static USITC Harmonized Tariff Schedule snapshot (compiled in)",
		Notes: []string{
			"This refresh is simulated; the reference dataset is static",
			"No external data source was contacted",
			"Update counts are always zero for the static dataset",
		},
		CacheCleared: true,
		AffectedEndpoints: []string{
			string(domain.ActionCountries),
			string(domain.ActionPopular),
			string(domain.ActionSearch),
			string(domain.ActionBrowse),
			string(domain.ActionCode),
			string(domain.ActionDutyRate),
		},
	}
}
