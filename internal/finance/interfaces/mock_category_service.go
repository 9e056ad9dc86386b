package interfaces

import (
	"errors"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type MockCategoryService struct {
	categories  []domain.Category
	usage       map[string]int
	deleteCheck derived.DeleteCheck
	deleteErr   error
	shouldFail  bool
}

func (m *MockCategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategory(categoryID, userID string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			return &m.categories[i], nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	if err := category.Validate(); err != nil {
		return err
	}
	category.ID = "generated-id"
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryService) UpdateCategory(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("service error")
	}
	for i := range m.categories {
		if m.categories[i].ID == category.ID {
			if err := category.Validate(); err != nil {
				return err
			}
			m.categories[i] = *category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID, userID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) GetDeleteCheck(categoryID, userID string) (derived.DeleteCheck, error) {
	if m.shouldFail {
		return derived.DeleteCheck{}, errors.New("service error")
	}
	return m.deleteCheck, nil
}

func (m *MockCategoryService) GetUsageCounts(userID string) (map[string]int, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.usage, nil
}
