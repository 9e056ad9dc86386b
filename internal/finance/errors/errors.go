package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrCategoryNotFound = errors.New("category not found")
var ErrEntryNotFound = errors.New("entry not found")
var ErrInvalidCategoryReference = NewValidationError("Category reference is invalid or unknown")

// CategoryInUseError blocks a category delete while entries still reference it.
type CategoryInUseError struct {
	Title string
	Count int
}

func (e *CategoryInUseError) Error() string {
	if e.Count == 1 {
		return fmt.Sprintf("Category %q cannot be deleted: 1 entry still references it", e.Title)
	}
	return fmt.Sprintf("Category %q cannot be deleted: %d entries still reference it", e.Title, e.Count)
}

func IsCategoryInUseError(err error) bool {
	var inUse *CategoryInUseError
	return errors.As(err, &inUse)
}
