package infrastructure

import (
	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type MockEntryRepository struct {
	Entries []domain.Entry
	Err     error
}

func (m *MockEntryRepository) Save(entry domain.Entry) error {
	if m.Err != nil {
		return m.Err
	}
	entry.Category = derived.NormalizeID(entry.Category)
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockEntryRepository) FindByUser(userID string) ([]domain.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var entries []domain.Entry
	for _, entry := range m.Entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) FindByID(entryID, userID string) (*domain.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Entries {
		if m.Entries[i].ID == entryID && m.Entries[i].UserID == userID {
			entry := m.Entries[i]
			return &entry, nil
		}
	}
	return nil, financeErrors.ErrEntryNotFound
}

func (m *MockEntryRepository) Update(entry domain.Entry) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Entries {
		if m.Entries[i].ID == entry.ID && m.Entries[i].UserID == entry.UserID {
			entry.Category = derived.NormalizeID(entry.Category)
			m.Entries[i] = entry
			return nil
		}
	}
	return financeErrors.ErrEntryNotFound
}

func (m *MockEntryRepository) Delete(entryID, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Entries {
		if m.Entries[i].ID == entryID && m.Entries[i].UserID == userID {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrEntryNotFound
}
