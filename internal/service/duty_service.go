package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ftzops/internal/domain"
	"ftzops/internal/port"
)

// DutyRateInput is the DTO for duty-rate calculation requests.
type DutyRateInput struct {
	HTSCode         string `json:"htsCode"`
	CountryOfOrigin string `json:"countryOfOrigin"`
	CustomsValue    string `json:"customs_value,omitempty"`
}

// DutyService resolves HTS codes and calculates applicable duty rates.
type DutyService interface {
	LookupCode(htsCode, countryOfOrigin string) (*domain.CodeLookupResult, error)
	CalculateDutyRate(input DutyRateInput) (*domain.DutyRateResult, error)
}

type dutyService struct {
	store port.ReferenceStore
}

// NewDutyService creates a new DutyService implementation.
func NewDutyService(store port.ReferenceStore) DutyService {
	return &dutyService{store: store}
}

// LookupCode finds the first entry matching the code either as-is or with dot
// separators stripped from both sides, case-insensitively. Dot presence and
// letter case never affect the outcome.
func (s *dutyService) LookupCode(htsCode, countryOfOrigin string) (*domain.CodeLookupResult, error) {
	if strings.TrimSpace(htsCode) == "" {
		return nil, domain.ErrMissingParameter
	}

	query := strings.ToLower(strings.TrimSpace(htsCode))
	var entry *domain.HTSEntry
	for _, e := range s.store.Entries() {
		code := strings.ToLower(e.HTSCode)
		if code == query || stripDots(code) == stripDots(query) {
			entry = &e
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeNotFound, htsCode)
	}

	result := &domain.CodeLookupResult{
		HTSEntry:   *entry,
		Found:      true,
		Notes:      []string{},
		LookedUpAt: time.Now().UTC(),
	}

	if entry.GeneralRate == "0%" {
		result.Notes = append(result.Notes, "This item is duty-free under general rates")
	}
	if cc := strings.TrimSpace(countryOfOrigin); cc != "" {
		profile := CountryRateProfile(cc)
		result.CountryInfo = &profile
		if profile.ApplicableRate != entry.GeneralRate {
			result.Notes = append(result.Notes,
				fmt.Sprintf("Rate for %s may differ from the general rate of %s", profile.CountryOfOrigin, entry.GeneralRate))
		}
	}
	return result, nil
}

// CalculateDutyRate resolves the applicable rate for a code and country of
// origin in strict priority order: country-specific special rate, then the
// "default" special rate, then the general rate.
func (s *dutyService) CalculateDutyRate(input DutyRateInput) (*domain.DutyRateResult, error) {
	code := strings.ToUpper(strings.TrimSpace(input.HTSCode))
	country := strings.ToUpper(strings.TrimSpace(input.CountryOfOrigin))
	if code == "" || country == "" {
		return nil, domain.ErrMissingParameter
	}

	record, ok := s.store.DutyRate(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRateNotFound, code)
	}

	applicable := record.GeneralRate
	if rate, ok := record.SpecialRates[country]; ok {
		applicable = rate
	} else if rate, ok := record.SpecialRates["default"]; ok {
		applicable = rate
	}

	result := &domain.DutyRateResult{
		HTSCode:         code,
		CountryOfOrigin: country,
		GeneralRate:     record.GeneralRate,
		ApplicableRate:  applicable,
		IsPreferential:  applicable != record.GeneralRate && !strings.EqualFold(applicable, record.GeneralRate),
		IsDutyFree:      strings.EqualFold(applicable, "free") || applicable == "0%",
		Notes:           []string{},
		Requirements:    []string{},
		CalculatedAt:    time.Now().UTC(),
	}
	if agreement, ok := s.store.TradeAgreement(country); ok {
		result.TradeAgreement = agreement
	}

	if result.IsPreferential {
		agreement := result.TradeAgreement
		if agreement == "" {
			agreement = "an applicable trade agreement"
		}
		result.Notes = append(result.Notes,
			fmt.Sprintf("Preferential rate applies under %s", agreement))
		result.Requirements = append(result.Requirements,
			"Certificate of origin required",
			"Goods must meet rules of origin requirements")
	}
	if result.IsDutyFree {
		result.Notes = append(result.Notes, "This item qualifies for duty-free entry")
	}
	result.Notes = append(result.Notes, "Duty rates are subject to change; verify against the current official schedule")

	if input.CustomsValue != "" {
		result.Estimate = estimateDuty(input.CustomsValue, applicable)
	}
	return result, nil
}

// estimateDuty computes the duty amount for an ad-valorem percentage rate.
// Compound, specific, and free rates yield no estimate.
func estimateDuty(customsValue, rate string) *domain.DutyEstimate {
	value, err := decimal.NewFromString(strings.TrimSpace(customsValue))
	if err != nil || value.IsNegative() {
		return nil
	}
	pct, ok := strings.CutSuffix(strings.TrimSpace(rate), "%")
	if !ok {
		return nil
	}
	ratio, err := decimal.NewFromString(pct)
	if err != nil {
		return nil
	}
	duty := value.Mul(ratio).Div(decimal.NewFromInt(100)).Round(2)
	return &domain.DutyEstimate{
		CustomsValue:  value.StringFixed(2),
		EstimatedDuty: duty.StringFixed(2),
		Currency:      "USD",
	}
}
