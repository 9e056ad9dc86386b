package domain

import (
	"time"

	"fintrack/internal/finance/errors"
)

const maxDescriptionLength = 200

// Entry is a single dated monetary record. Value is always stored unsigned;
// whether it counts as income or expense comes from the referenced category.
//
// Category deliberately stays `any`: depending on the write path the backend
// may hand back a plain id string, a populated object with `_id` or `id`, or
// a driver id wrapper with an `$oid` field. Consumers must go through
// derived.NormalizeID before comparing references.
type Entry struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"-"`
	Description string    `json:"description,omitempty"`
	Value       float64   `json:"value"`
	Date        string    `json:"date"`
	Category    any       `json:"category"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func (e *Entry) Validate() error {
	if e.Value <= 0 {
		return errors.NewValidationError("Value must be greater than zero")
	}
	if e.Date == "" {
		return errors.NewValidationError("Date must not be empty")
	}
	if len(e.Description) > maxDescriptionLength {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}

type EntryRepository interface {
	Save(entry Entry) error
	FindByUser(userID string) ([]Entry, error)
	FindByID(entryID, userID string) (*Entry, error)
	Update(entry Entry) error
	Delete(entryID, userID string) error
}
