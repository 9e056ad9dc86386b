package domain

import (
	"strings"
	"time"

	"fintrack/internal/finance/errors"
)

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#1976d2"

const maxTitleLength = 60

type Category struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	Expense   bool      `json:"expense"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.NewValidationError("Title must not be empty")
	}
	if len(c.Title) > maxTitleLength {
		return errors.NewValidationError("Title must be of length less than 60")
	}
	return nil
}

type CategoryRepository interface {
	Save(category Category) error
	FindByUser(userID string) ([]Category, error)
	FindByID(categoryID, userID string) (*Category, error)
	Update(category Category) error
	Delete(categoryID, userID string) error
}
