package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
	"fintrack/internal/finance/infrastructure"
)

func newCategoryService(categories []domain.Category, entries []domain.Entry) (*CategoryService, *infrastructure.MockCategoryRepository) {
	categoryRepo := &infrastructure.MockCategoryRepository{Categories: categories}
	entryRepo := &infrastructure.MockEntryRepository{Entries: entries}
	return NewCategoryService(categoryRepo, entryRepo), categoryRepo
}

func TestCreateCategory_AssignsIDAndDefaultColor(t *testing.T) {
	service, repo := newCategoryService(nil, nil)

	category := &domain.Category{UserID: "user-1", Title: "Transporte", Expense: true}
	require.NoError(t, service.CreateCategory(category))

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, domain.DefaultCategoryColor, category.Color)
	assert.False(t, category.CreatedAt.IsZero())
	require.Len(t, repo.Categories, 1)
	assert.Equal(t, "Transporte", repo.Categories[0].Title)
}

func TestCreateCategory_KeepsProvidedColor(t *testing.T) {
	service, repo := newCategoryService(nil, nil)

	category := &domain.Category{UserID: "user-1", Title: "Lazer", Color: "#ff0000"}
	require.NoError(t, service.CreateCategory(category))

	assert.Equal(t, "#ff0000", repo.Categories[0].Color)
}

func TestCreateCategory_RejectsEmptyTitle(t *testing.T) {
	service, repo := newCategoryService(nil, nil)

	err := service.CreateCategory(&domain.Category{UserID: "user-1", Title: "   "})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Categories)
}

func TestUpdateCategory_UnknownID(t *testing.T) {
	service, _ := newCategoryService(nil, nil)

	err := service.UpdateCategory(&domain.Category{ID: "missing", UserID: "user-1", Title: "Casa"})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestUpdateCategory_PreservesColorWhenOmitted(t *testing.T) {
	service, repo := newCategoryService([]domain.Category{
		{ID: "cat-1", UserID: "user-1", Title: "Casa", Color: "#112233", Expense: true},
	}, nil)

	require.NoError(t, service.UpdateCategory(&domain.Category{ID: "cat-1", UserID: "user-1", Title: "Moradia", Expense: true}))

	assert.Equal(t, "Moradia", repo.Categories[0].Title)
	assert.Equal(t, "#112233", repo.Categories[0].Color)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	service, repo := newCategoryService(
		[]domain.Category{{ID: "cat-1", UserID: "user-1", Title: "Mercado", Expense: true}},
		[]domain.Entry{
			{ID: "e1", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: "cat-1"},
			{ID: "e2", UserID: "user-1", Value: 20, Date: "2026-01-03", Category: map[string]any{"_id": "cat-1"}},
		},
	)

	err := service.DeleteCategory("cat-1", "user-1")
	require.Error(t, err)
	assert.True(t, financeErrors.IsCategoryInUseError(err))
	assert.Contains(t, err.Error(), "2 entries")
	assert.Len(t, repo.Categories, 1)
}

func TestDeleteCategory_AllowedWhenUnused(t *testing.T) {
	service, repo := newCategoryService(
		[]domain.Category{{ID: "cat-1", UserID: "user-1", Title: "Mercado", Expense: true}},
		[]domain.Entry{{ID: "e1", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: "other"}},
	)

	require.NoError(t, service.DeleteCategory("cat-1", "user-1"))
	assert.Empty(t, repo.Categories)
}

func TestGetDeleteCheck(t *testing.T) {
	service, _ := newCategoryService(
		[]domain.Category{{ID: "cat-1", UserID: "user-1", Title: "Mercado", Expense: true}},
		[]domain.Entry{{ID: "e1", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: "cat-1"}},
	)

	check, err := service.GetDeleteCheck("cat-1", "user-1")
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 1, check.BlockingCount)

	_, err = service.GetDeleteCheck("missing", "user-1")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestGetUsageCounts_SkipsUnresolvableReferences(t *testing.T) {
	service, _ := newCategoryService(nil, []domain.Entry{
		{ID: "e1", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: "cat-1"},
		{ID: "e2", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: "cat-1"},
		{ID: "e3", UserID: "user-1", Value: 10, Date: "2026-01-02", Category: nil},
	})

	counts, err := service.GetUsageCounts("user-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"cat-1": 2}, counts)
}
