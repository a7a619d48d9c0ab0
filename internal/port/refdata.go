package port

import "ftzops/internal/domain"

// ReferenceStore is the read-only provider of tariff reference data. It is
// built once at process start and is safe for concurrent use; implementations
// must never mutate returned data after construction.
type ReferenceStore interface {
	Countries() []domain.Country
	Entries() []domain.HTSEntry
	PopularCodes() []domain.PopularCode
	BrowseNodes() []domain.BrowseNode
	DutyRate(code string) (domain.DutyRateRecord, bool)
	DutyRateCount() int
	TradeAgreement(countryCode string) (string, bool)
}
