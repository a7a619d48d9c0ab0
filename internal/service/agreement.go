package service

import (
	"strings"

	"ftzops/internal/domain"
)

// CountryRateProfile derives the preferential-rate profile for a country of
// origin. Both the search annotation and the single-code lookup call this so
// the two surfaces can never disagree.
func CountryRateProfile(countryCode string) domain.CountryRateProfile {
	cc := strings.ToUpper(strings.TrimSpace(countryCode))

	agreement := "Standard"
	switch cc {
	case "CA", "MX":
		agreement = "Free"
	case "CN":
		agreement = "Variable"
	case "GB", "DE":
		agreement = "Standard"
	}

	profile := domain.CountryRateProfile{
		CountryOfOrigin: cc,
		Agreement:       agreement,
		ApplicableRate:  "See tariff schedule",
		Note:            "Standard MFN rates apply for this country of origin",
	}
	if agreement == "Free" {
		profile.ApplicableRate = "0%"
		profile.Note = "Duty-free under trade agreement for this country of origin"
	}
	return profile
}
