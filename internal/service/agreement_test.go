package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ftzops/internal/service"
)

func TestCountryRateProfile(t *testing.T) {
	tests := []struct {
		country        string
		wantAgreement  string
		wantApplicable string
	}{
		{"CA", "Free", "0%"},
		{"MX", "Free", "0%"},
		{"CN", "Variable", "See tariff schedule"},
		{"GB", "Standard", "See tariff schedule"},
		{"DE", "Standard", "See tariff schedule"},
		{"BR", "Standard", "See tariff schedule"},
		{"JP", "Standard", "See tariff schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			p := service.CountryRateProfile(tt.country)
			assert.Equal(t, tt.country, p.CountryOfOrigin)
			assert.Equal(t, tt.wantAgreement, p.Agreement)
			assert.Equal(t, tt.wantApplicable, p.ApplicableRate)
			assert.NotEmpty(t, p.Note)
		})
	}
}

func TestCountryRateProfile_NormalizesInput(t *testing.T) {
	p := service.CountryRateProfile("  mx ")
	assert.Equal(t, "MX", p.CountryOfOrigin)
	assert.Equal(t, "Free", p.Agreement)
	assert.Equal(t, "0%", p.ApplicableRate)
}

func TestCountryRateProfile_FreeNoteMentionsAgreement(t *testing.T) {
	free := service.CountryRateProfile("CA")
	standard := service.CountryRateProfile("DE")
	assert.Contains(t, free.Note, "Duty-free")
	assert.Contains(t, standard.Note, "MFN")
}
