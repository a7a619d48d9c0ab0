package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftzops/internal/service"
)

func TestCountryService_List_All(t *testing.T) {
	svc := service.NewCountryService(newFixtureStore())

	list := svc.List(service.CountryFilter{})

	require.Len(t, list.Countries, 7)
	assert.Equal(t, 7, list.Total)
	// Sorted alphabetically by name.
	assert.Equal(t, "Brazil", list.Countries[0].Name)
	assert.Equal(t, "Canada", list.Countries[1].Name)
	assert.Equal(t, "South Korea", list.Countries[5].Name)
}

func TestCountryService_List_RegionCaseInsensitive(t *testing.T) {
	svc := service.NewCountryService(newFixtureStore())

	list := svc.List(service.CountryFilter{Region: "asia"})

	require.Len(t, list.Countries, 3)
	for _, c := range list.Countries {
		assert.Equal(t, "Asia", c.Region)
	}
	// Sorted by name: China, Japan, South Korea.
	assert.Equal(t, "China", list.Countries[0].Name)
	assert.Equal(t, "South Korea", list.Countries[2].Name)
}

func TestCountryService_List_TradeAgreementOnly(t *testing.T) {
	svc := service.NewCountryService(newFixtureStore())

	list := svc.List(service.CountryFilter{TradeAgreementOnly: true})

	require.Len(t, list.Countries, 3)
	for _, c := range list.Countries {
		assert.NotEmpty(t, c.TradeAgreement)
	}
}

func TestCountryService_List_SearchMatchesNameOrCode(t *testing.T) {
	svc := service.NewCountryService(newFixtureStore())

	byName := svc.List(service.CountryFilter{Search: "kore"})
	require.Len(t, byName.Countries, 1)
	assert.Equal(t, "KR", byName.Countries[0].Code)

	byCode := svc.List(service.CountryFilter{Search: "mx"})
	require.Len(t, byCode.Countries, 1)
	assert.Equal(t, "Mexico", byCode.Countries[0].Name)
}

func TestCountryService_List_MetadataIsUnfiltered(t *testing.T) {
	svc := service.NewCountryService(newFixtureStore())

	list := svc.List(service.CountryFilter{Region: "Europe"})

	assert.Equal(t, 1, list.Total)
	// Regions and agreements describe the whole dataset, not the filtered view.
	assert.ElementsMatch(t, []string{"Asia", "Europe", "North America", "South America"}, list.Regions)
	assert.ElementsMatch(t, []string{"KORUS", "USMCA"}, list.TradeAgreements)
}
