package application

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type EntryService struct {
	repo         domain.EntryRepository
	categoryRepo domain.CategoryRepository
}

func NewEntryService(repo domain.EntryRepository, categoryRepo domain.CategoryRepository) *EntryService {
	return &EntryService{repo: repo, categoryRepo: categoryRepo}
}

// GetUserEntries lists the user's entries with the criteria applied in memory.
// Filtering happens after the load so the matching rules stay identical for
// every caller regardless of how the entries are stored.
func (s *EntryService) GetUserEntries(userID string, criteria derived.Criteria) ([]domain.Entry, error) {
	entries, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if criteria.IsZero() {
		return entries, nil
	}
	return derived.Filter(entries, criteria), nil
}

func (s *EntryService) GetEntry(entryID, userID string) (*domain.Entry, error) {
	return s.repo.FindByID(entryID, userID)
}

func (s *EntryService) CreateEntry(entry *domain.Entry) error {
	entry.ID = uuid.NewString()
	if err := s.prepare(entry); err != nil {
		return err
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return s.repo.Save(*entry)
}

func (s *EntryService) UpdateEntry(entry *domain.Entry) error {
	existing, err := s.repo.FindByID(entry.ID, entry.UserID)
	if err != nil {
		return err
	}
	if err := s.prepare(entry); err != nil {
		return err
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now().UTC()
	return s.repo.Update(*entry)
}

func (s *EntryService) DeleteEntry(entryID, userID string) error {
	return s.repo.Delete(entryID, userID)
}

// prepare canonicalizes the category reference and validates the entry.
// Whatever shape the reference arrived in, only the normalized id is kept.
func (s *EntryService) prepare(entry *domain.Entry) error {
	categoryID := derived.NormalizeID(entry.Category)
	if categoryID == "" {
		return financeErrors.ErrInvalidCategoryReference
	}
	if _, err := s.categoryRepo.FindByID(categoryID, entry.UserID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			return financeErrors.ErrInvalidCategoryReference
		}
		return err
	}
	entry.Category = categoryID

	if err := entry.Validate(); err != nil {
		return err
	}
	if _, ok := derived.ParseDate(entry.Date); !ok {
		return financeErrors.NewValidationError("Date must be a valid ISO date or date-time")
	}
	return nil
}
