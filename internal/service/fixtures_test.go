package service_test

import (
	"ftzops/internal/domain"
	"ftzops/internal/repository/static"
)

// newFixtureStore builds a small reference store covering every code path:
// duty-free and dutiable entries, country-specific and default special rates,
// a full four-level browse subtree, and mixed usage frequencies.
func newFixtureStore() *static.Store {
	return static.NewStore(static.Data{
		Countries: []domain.Country{
			{Code: "BR", Name: "Brazil", Region: "South America"},
			{Code: "CA", Name: "Canada", Region: "North America", TradeAgreement: "USMCA"},
			{Code: "CN", Name: "China", Region: "Asia"},
			{Code: "DE", Name: "Germany", Region: "Europe"},
			{Code: "JP", Name: "Japan", Region: "Asia"},
			{Code: "KR", Name: "South Korea", Region: "Asia", TradeAgreement: "KORUS"},
			{Code: "MX", Name: "Mexico", Region: "North America", TradeAgreement: "USMCA"},
		},
		Entries: []domain.HTSEntry{
			{HTSCode: "0901.21.0035", Description: "Coffee, roasted, not decaffeinated", Category: "Food Products", Chapter: "09", Heading: "0901", Subheading: "090121", Unit: "kg", GeneralRate: "Free", SpecialRate: "Free"},
			{HTSCode: "6109.10.0012", Description: "T-shirts, knitted, of cotton", Category: "Apparel", Chapter: "61", Heading: "6109", Subheading: "610910", Unit: "doz.", GeneralRate: "16.5%", SpecialRate: "Free (CA,KR,MX)"},
			{HTSCode: "8471.30.0100", Description: "Portable automatic data processing machines, weighing not more than 10 kg", Category: "Electronics", Chapter: "84", Heading: "8471", Subheading: "847130", Unit: "No.", GeneralRate: "0%", SpecialRate: "Free"},
			{HTSCode: "8528.72.6420", Description: "Color television reception apparatus with electronic tuner", Category: "Electronics", Chapter: "85", Heading: "8528", Subheading: "852872", Unit: "No.", GeneralRate: "3.9%", SpecialRate: "Free (CA,MX)"},
			{HTSCode: "8542.31.0001", Description: "Electronic integrated circuits: processors and controllers", Category: "Electronics", Chapter: "85", Heading: "8542", Subheading: "854231", Unit: "No.", GeneralRate: "2.5%", SpecialRate: "Free (CA,KR,MX)"},
			{HTSCode: "8542.32.0041", Description: "Electronic integrated circuits: memories, DRAM", Category: "Electronics", Chapter: "85", Heading: "8542", Subheading: "854232", Unit: "No.", GeneralRate: "Free", SpecialRate: "Free"},
		},
		Popular: []domain.PopularCode{
			{HTSCode: "8542.31.0001", Description: "Processors and controllers", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "2.5%", Unit: "No."},
			{HTSCode: "8471.30.0100", Description: "Portable data processing machines", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "0%", Unit: "No."},
			{HTSCode: "6109.10.0012", Description: "T-shirts, knitted, of cotton", Category: "Apparel", UsageFrequency: domain.FrequencyHigh, GeneralRate: "16.5%", Unit: "doz."},
			{HTSCode: "8528.72.6420", Description: "Color television reception apparatus", Category: "Electronics", UsageFrequency: domain.FrequencyHigh, GeneralRate: "3.9%", Unit: "No."},
			{HTSCode: "0901.21.0035", Description: "Coffee, roasted", Category: "Food Products", UsageFrequency: domain.FrequencyMedium, GeneralRate: "Free", Unit: "kg"},
			{HTSCode: "8542.32.0041", Description: "Memories, DRAM", Category: "Electronics", UsageFrequency: domain.UsageFrequency("Occasional"), GeneralRate: "Free", Unit: "No."},
		},
		BrowseNodes: []domain.BrowseNode{
			{Type: domain.LevelChapter, Code: "84", Title: "Machinery and mechanical appliances", Level: 1},
			{Type: domain.LevelHeading, Code: "8471", Title: "Automatic data processing machines", Level: 2, Chapter: "84"},
			{Type: domain.LevelSubheading, Code: "847130", Title: "Portable machines, not more than 10 kg", Level: 3, Chapter: "84", Heading: "8471"},
			{Type: domain.LevelTariffLine, HTSCode: "8471.30.0100", Description: "Portable automatic data processing machines", Level: 4, Chapter: "84", Heading: "8471", Subheading: "847130"},
			{Type: domain.LevelChapter, Code: "85", Title: "Electrical machinery and equipment", Level: 1},
			{Type: domain.LevelHeading, Code: "8542", Title: "Electronic integrated circuits", Level: 2, Chapter: "85"},
			{Type: domain.LevelSubheading, Code: "854231", Title: "Processors and controllers", Level: 3, Chapter: "85", Heading: "8542"},
			{Type: domain.LevelTariffLine, HTSCode: "8542.31.0001", Description: "Processors and controllers", Level: 4, Chapter: "85", Heading: "8542", Subheading: "854231"},
			{Type: domain.LevelTariffLine, HTSCode: "8542.32.0041", Description: "Memories, DRAM", Level: 4, Chapter: "85", Heading: "8542", Subheading: "854232"},
		},
		DutyRates: map[string]domain.DutyRateRecord{
			"8542.31.0001": {GeneralRate: "2.5%", SpecialRates: map[string]string{"CA": "Free", "KR": "Free", "MX": "Free"}},
			"8471.30.0100": {GeneralRate: "0%", SpecialRates: map[string]string{"default": "0%"}},
			"6109.10.0012": {GeneralRate: "16.5%", SpecialRates: map[string]string{"KR": "Free", "default": "12%"}},
			"8517.13.0000": {GeneralRate: "Free", SpecialRates: map[string]string{}},
			"8528.72.6420": {GeneralRate: "3.9%", SpecialRates: map[string]string{"BR": "0.0%"}},
		},
		Agreements: map[string]string{
			"CA": "USMCA",
			"KR": "KORUS",
			"MX": "USMCA",
		},
	})
}
