package interfaces

import (
	"errors"

	"fintrack/internal/finance/derived"
)

type MockSummaryService struct {
	balance    derived.Balance
	series     []derived.MonthTotals
	recent     []derived.RecentEntry
	shouldFail bool
}

func (m *MockSummaryService) GetBalance(userID string) (derived.Balance, error) {
	if m.shouldFail {
		return derived.Balance{}, errors.New("service error")
	}
	return m.balance, nil
}

func (m *MockSummaryService) GetMonthlySeries(userID string) ([]derived.MonthTotals, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.series, nil
}

func (m *MockSummaryService) GetRecentEntries(userID string) ([]derived.RecentEntry, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.recent, nil
}
