package infrastructure

import (
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
	Err        error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID, userID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID && m.Categories[i].UserID == category.UserID {
			m.Categories[i] = category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(categoryID, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}
