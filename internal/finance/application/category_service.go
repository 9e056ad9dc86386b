package application

import (
	"time"

	"github.com/google/uuid"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type CategoryService struct {
	repo      domain.CategoryRepository
	entryRepo domain.EntryRepository
}

func NewCategoryService(repo domain.CategoryRepository, entryRepo domain.EntryRepository) *CategoryService {
	return &CategoryService{repo: repo, entryRepo: entryRepo}
}

func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	return s.repo.FindByUser(userID)
}

func (s *CategoryService) GetCategory(categoryID, userID string) (*domain.Category, error) {
	return s.repo.FindByID(categoryID, userID)
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	category.ID = uuid.NewString()
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}
	if err := category.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.repo.Save(*category)
}

func (s *CategoryService) UpdateCategory(category *domain.Category) error {
	existing, err := s.repo.FindByID(category.ID, category.UserID)
	if err != nil {
		return err
	}
	if category.Color == "" {
		category.Color = existing.Color
	}
	if err := category.Validate(); err != nil {
		return err
	}
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now().UTC()
	return s.repo.Update(*category)
}

// DeleteCategory refuses to remove a category that entries still reference.
// The usage check runs over the user's current entries right before the
// delete, mirroring what GetDeleteCheck reports.
func (s *CategoryService) DeleteCategory(categoryID, userID string) error {
	category, err := s.repo.FindByID(categoryID, userID)
	if err != nil {
		return err
	}
	entries, err := s.entryRepo.FindByUser(userID)
	if err != nil {
		return err
	}
	check := derived.CanDelete(categoryID, entries)
	if !check.Allowed {
		return &financeErrors.CategoryInUseError{Title: category.Title, Count: check.BlockingCount}
	}
	return s.repo.Delete(categoryID, userID)
}

func (s *CategoryService) GetDeleteCheck(categoryID, userID string) (derived.DeleteCheck, error) {
	if _, err := s.repo.FindByID(categoryID, userID); err != nil {
		return derived.DeleteCheck{}, err
	}
	entries, err := s.entryRepo.FindByUser(userID)
	if err != nil {
		return derived.DeleteCheck{}, err
	}
	return derived.CanDelete(categoryID, entries), nil
}

func (s *CategoryService) GetUsageCounts(userID string) (map[string]int, error) {
	entries, err := s.entryRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return derived.UsageCounts(entries), nil
}
