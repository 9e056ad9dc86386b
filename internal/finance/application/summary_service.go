package application

import (
	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
)

// SummaryService computes the dashboard aggregates. Every aggregate loads the
// full entry and category sets for the user and derives the numbers in memory,
// so the figures always agree with what the entry listing shows.
type SummaryService struct {
	entryRepo    domain.EntryRepository
	categoryRepo domain.CategoryRepository
}

func NewSummaryService(entryRepo domain.EntryRepository, categoryRepo domain.CategoryRepository) *SummaryService {
	return &SummaryService{entryRepo: entryRepo, categoryRepo: categoryRepo}
}

func (s *SummaryService) load(userID string) ([]domain.Entry, []domain.Category, error) {
	entries, err := s.entryRepo.FindByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categoryRepo.FindByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return entries, categories, nil
}

func (s *SummaryService) GetBalance(userID string) (derived.Balance, error) {
	entries, categories, err := s.load(userID)
	if err != nil {
		return derived.Balance{}, err
	}
	return derived.BalanceSummary(entries, categories), nil
}

func (s *SummaryService) GetMonthlySeries(userID string) ([]derived.MonthTotals, error) {
	entries, categories, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return derived.MonthlySeries(entries, categories), nil
}

func (s *SummaryService) GetRecentEntries(userID string) ([]derived.RecentEntry, error) {
	entries, categories, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	return derived.RecentEntries(entries, categories), nil
}
