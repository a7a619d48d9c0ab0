package static

import "ftzops/internal/domain"

// seedDutyRates keys duty-rate records by dotted HTS code. A country-specific
// special rate overrides "default", which overrides the general rate.
var seedDutyRates = map[string]domain.DutyRateRecord{
	"2204.21.5040": {
		GeneralRate: "6.3¢/liter",
		SpecialRates: map[string]string{
			"AU": "Free", "CL": "Free", "KR": "Free", "MX": "Free",
		},
	},
	"3926.90.9985": {
		GeneralRate: "5.3%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free", "AU": "Free",
		},
	},
	"4011.10.1010": {
		GeneralRate: "4%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free",
		},
	},
	"6109.10.0012": {
		GeneralRate: "16.5%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "AU": "Free", "CL": "Free", "SG": "Free",
		},
	},
	"6403.99.6075": {
		GeneralRate: "8.5%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "AU": "Free",
		},
	},
	"8471.30.0100": {
		GeneralRate:  "0%",
		SpecialRates: map[string]string{"default": "0%"},
	},
	"8501.31.4000": {
		GeneralRate: "4%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free", "default": "4%",
		},
	},
	"8507.60.0020": {
		GeneralRate: "3.4%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free",
		},
	},
	"8517.13.0000": {
		GeneralRate:  "Free",
		SpecialRates: map[string]string{"default": "Free"},
	},
	"8528.72.6420": {
		GeneralRate: "3.9%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free",
		},
	},
	"8542.31.0001": {
		GeneralRate: "2.5%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free", "SG": "Free",
		},
	},
	"8544.42.9090": {
		GeneralRate: "2.6%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free",
		},
	},
	"8703.23.0190": {
		GeneralRate: "2.5%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free",
		},
	},
	"8708.29.5160": {
		GeneralRate: "2.5%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free",
		},
	},
	"9405.11.4010": {
		GeneralRate: "3.9%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "KR": "Free",
		},
	},
	"9506.62.4080": {
		GeneralRate: "4.8%",
		SpecialRates: map[string]string{
			"CA": "Free", "MX": "Free", "AU": "Free",
		},
	},
}
