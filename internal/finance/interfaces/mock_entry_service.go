package interfaces

import (
	"errors"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type MockEntryService struct {
	entries      []domain.Entry
	lastCriteria derived.Criteria
	shouldFail   bool
}

func (m *MockEntryService) GetUserEntries(userID string, criteria derived.Criteria) ([]domain.Entry, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	m.lastCriteria = criteria
	return derived.Filter(m.entries, criteria), nil
}

func (m *MockEntryService) GetEntry(entryID, userID string) (*domain.Entry, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.entries {
		if m.entries[i].ID == entryID {
			return &m.entries[i], nil
		}
	}
	return nil, financeErrors.ErrEntryNotFound
}

func (m *MockEntryService) CreateEntry(entry *domain.Entry) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if derived.NormalizeID(entry.Category) == "" {
		return financeErrors.ErrInvalidCategoryReference
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	entry.ID = "generated-id"
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockEntryService) UpdateEntry(entry *domain.Entry) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	for i := range m.entries {
		if m.entries[i].ID == entry.ID {
			if err := entry.Validate(); err != nil {
				return err
			}
			m.entries[i] = *entry
			return nil
		}
	}
	return financeErrors.ErrEntryNotFound
}

func (m *MockEntryService) DeleteEntry(entryID, userID string) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	for i := range m.entries {
		if m.entries[i].ID == entryID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrEntryNotFound
}
