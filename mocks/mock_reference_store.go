package mocks

import (
	"github.com/stretchr/testify/mock"

	"ftzops/internal/domain"
)

// MockReferenceStore is a mock implementation of port.ReferenceStore.
type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) Countries() []domain.Country {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Country)
}

func (m *MockReferenceStore) Entries() []domain.HTSEntry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.HTSEntry)
}

func (m *MockReferenceStore) PopularCodes() []domain.PopularCode {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.PopularCode)
}

func (m *MockReferenceStore) BrowseNodes() []domain.BrowseNode {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.BrowseNode)
}

func (m *MockReferenceStore) DutyRate(code string) (domain.DutyRateRecord, bool) {
	args := m.Called(code)
	return args.Get(0).(domain.DutyRateRecord), args.Bool(1)
}

func (m *MockReferenceStore) DutyRateCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockReferenceStore) TradeAgreement(countryCode string) (string, bool) {
	args := m.Called(countryCode)
	return args.String(0), args.Bool(1)
}
