package static

import "ftzops/internal/domain"

// seedCountries is the country-of-origin reference list. Trade agreement
// names reflect the agreements in force for U.S. imports.
var seedCountries = []domain.Country{
	{Code: "AU", Name: "Australia", Region: "Oceania", TradeAgreement: "AUSFTA"},
	{Code: "BR", Name: "Brazil", Region: "South America"},
	{Code: "CA", Name: "Canada", Region: "North America", TradeAgreement: "USMCA"},
	{Code: "CL", Name: "Chile", Region: "South America", TradeAgreement: "US-Chile FTA"},
	{Code: "CN", Name: "China", Region: "Asia"},
	{Code: "CO", Name: "Colombia", Region: "South America", TradeAgreement: "US-Colombia TPA"},
	{Code: "DE", Name: "Germany", Region: "Europe"},
	{Code: "FR", Name: "France", Region: "Europe"},
	{Code: "GB", Name: "United Kingdom", Region: "Europe"},
	{Code: "IL", Name: "Israel", Region: "Middle East", TradeAgreement: "US-Israel FTA"},
	{Code: "IN", Name: "India", Region: "Asia"},
	{Code: "IT", Name: "Italy", Region: "Europe"},
	{Code: "JP", Name: "Japan", Region: "Asia"},
	{Code: "KR", Name: "South Korea", Region: "Asia", TradeAgreement: "KORUS"},
	{Code: "MX", Name: "Mexico", Region: "North America", TradeAgreement: "USMCA"},
	{Code: "MY", Name: "Malaysia", Region: "Asia"},
	{Code: "PE", Name: "Peru", Region: "South America", TradeAgreement: "US-Peru TPA"},
	{Code: "SG", Name: "Singapore", Region: "Asia", TradeAgreement: "US-Singapore FTA"},
	{Code: "TH", Name: "Thailand", Region: "Asia"},
	{Code: "TW", Name: "Taiwan", Region: "Asia"},
	{Code: "VN", Name: "Vietnam", Region: "Asia"},
}

// seedTradeAgreements maps country of origin to the agreement consulted when
// deciding whether a resolved duty rate is preferential.
var seedTradeAgreements = map[string]string{
	"AU": "AUSFTA",
	"CA": "USMCA",
	"CL": "US-Chile FTA",
	"CO": "US-Colombia TPA",
	"IL": "US-Israel FTA",
	"KR": "KORUS",
	"MX": "USMCA",
	"PE": "US-Peru TPA",
	"SG": "US-Singapore FTA",
}
