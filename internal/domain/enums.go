package domain

// Action identifies one operation on the HTS dispatch surface.
type Action string

const (
	ActionCountries Action = "countries"
	ActionPopular   Action = "popular"
	ActionStatus    Action = "status"
	ActionSearch    Action = "search"
	ActionBrowse    Action = "browse"
	ActionCode      Action = "code"
	ActionDutyRate  Action = "duty-rate"
	ActionRefresh   Action = "refresh"
)

// Actions lists every recognized action in dispatch-surface order.
var Actions = []Action{
	ActionCountries,
	ActionPopular,
	ActionStatus,
	ActionSearch,
	ActionBrowse,
	ActionCode,
	ActionDutyRate,
	ActionRefresh,
}

// UsageFrequency classifies how often a popular HTS code is used.
type UsageFrequency string

const (
	FrequencyLow      UsageFrequency = "Low"
	FrequencyMedium   UsageFrequency = "Medium"
	FrequencyHigh     UsageFrequency = "High"
	FrequencyVeryHigh UsageFrequency = "Very High"
)

// frequencyRanks fixes the sort order for popular-code listings. Unrecognized
// values rank 0 and sort below Medium.
var frequencyRanks = map[UsageFrequency]int{
	FrequencyVeryHigh: 3,
	FrequencyHigh:     2,
	FrequencyMedium:   1,
}

// Rank returns the numeric sort rank for a usage frequency.
func (f UsageFrequency) Rank() int {
	return frequencyRanks[f]
}

// BrowseLevel identifies the depth of a node in the classification hierarchy.
type BrowseLevel string

const (
	LevelChapter    BrowseLevel = "chapter"
	LevelHeading    BrowseLevel = "heading"
	LevelSubheading BrowseLevel = "subheading"
	LevelTariffLine BrowseLevel = "tariff_line"
)

// BrowseLevels lists the valid hierarchy levels from broadest to narrowest.
var BrowseLevels = []BrowseLevel{LevelChapter, LevelHeading, LevelSubheading, LevelTariffLine}

// SearchType selects which fields a search query matches against.
type SearchType string

const (
	SearchByCode        SearchType = "code"
	SearchByDescription SearchType = "description"
)
