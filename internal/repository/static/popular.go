package static

import "ftzops/internal/domain"

// seedPopularCodes lists the HTS codes most frequently classified through the
// zone, for the ranked "popular" listing.
var seedPopularCodes = []domain.PopularCode{
	{HTSCode: "8471.30.0100", Description: "Portable automatic data processing machines", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "0%", Unit: "No."},
	{HTSCode: "8517.13.0000", Description: "Smartphones for cellular networks", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "Free", Unit: "No."},
	{HTSCode: "8542.31.0001", Description: "Electronic integrated circuits: processors and controllers", Category: "Electronics", UsageFrequency: domain.FrequencyVeryHigh, GeneralRate: "2.5%", Unit: "No."},
	{HTSCode: "6109.10.0012", Description: "T-shirts, knitted, of cotton, men's", Category: "Apparel", UsageFrequency: domain.FrequencyHigh, GeneralRate: "16.5%", Unit: "doz."},
	{HTSCode: "8507.60.0020", Description: "Lithium-ion batteries", Category: "Electronics", UsageFrequency: domain.FrequencyHigh, GeneralRate: "3.4%", Unit: "No."},
	{HTSCode: "8528.72.6420", Description: "Color television reception apparatus, LCD", Category: "Electronics", UsageFrequency: domain.FrequencyHigh, GeneralRate: "3.9%", Unit: "No."},
	{HTSCode: "8703.23.0190", Description: "Passenger motor vehicles, 1,500-3,000 cc", Category: "Vehicles", UsageFrequency: domain.FrequencyHigh, GeneralRate: "2.5%", Unit: "No."},
	{HTSCode: "4011.10.1010", Description: "New pneumatic radial tires, for motor cars", Category: "Rubber Products", UsageFrequency: domain.FrequencyMedium, GeneralRate: "4%", Unit: "No."},
	{HTSCode: "6403.99.6075", Description: "Footwear with leather uppers, other", Category: "Footwear", UsageFrequency: domain.FrequencyMedium, GeneralRate: "8.5%", Unit: "prs."},
	{HTSCode: "8544.42.9090", Description: "Insulated electric conductors fitted with connectors", Category: "Electronics", UsageFrequency: domain.FrequencyMedium, GeneralRate: "2.6%", Unit: "kg"},
	{HTSCode: "9403.60.8081", Description: "Wooden furniture, other", Category: "Furniture", UsageFrequency: domain.FrequencyMedium, GeneralRate: "Free", Unit: "No."},
	{HTSCode: "0901.21.0035", Description: "Coffee, roasted, not decaffeinated", Category: "Food Products", UsageFrequency: domain.FrequencyLow, GeneralRate: "Free", Unit: "kg"},
	{HTSCode: "7108.13.5500", Description: "Gold, nonmonetary, in semimanufactured forms", Category: "Precious Metals", UsageFrequency: domain.FrequencyLow, GeneralRate: "4.1%", Unit: "g"},
	{HTSCode: "9503.00.0073", Description: "Toys representing animals or non-human creatures", Category: "Toys", UsageFrequency: domain.FrequencyLow, GeneralRate: "Free", Unit: "No."},
	{HTSCode: "9506.62.4080", Description: "Inflatable balls, other", Category: "Sporting Goods", UsageFrequency: domain.FrequencyLow, GeneralRate: "4.8%", Unit: "No."},
}
