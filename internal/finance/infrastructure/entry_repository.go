package infrastructure

import (
	"database/sql"
	"errors"

	"fintrack/internal/finance/derived"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type EntryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Save persists the normalized category reference, not the raw shape the
// caller provided. Reads then always see the canonical id string.
func (r *EntryRepository) Save(entry domain.Entry) error {
	_, err := r.db.Exec(
		`INSERT INTO entries (id, user_id, description, value, date, category_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Description, entry.Value, entry.Date,
		derived.NormalizeID(entry.Category), entry.CreatedAt, entry.UpdatedAt,
	)
	return err
}

func (r *EntryRepository) FindByUser(userID string) ([]domain.Entry, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, description, value, date, category_id, created_at, updated_at
        FROM entries WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *EntryRepository) FindByID(entryID, userID string) (*domain.Entry, error) {
	row := r.db.QueryRow(
		`SELECT id, user_id, description, value, date, category_id, created_at, updated_at
        FROM entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EntryRepository) Update(entry domain.Entry) error {
	result, err := r.db.Exec(
		`UPDATE entries SET description = $1, value = $2, date = $3, category_id = $4, updated_at = $5
        WHERE id = $6 AND user_id = $7`,
		entry.Description, entry.Value, entry.Date, derived.NormalizeID(entry.Category),
		entry.UpdatedAt, entry.ID, entry.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(entryID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM entries WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.Entry, error) {
	var entry domain.Entry
	var categoryID string
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Description, &entry.Value,
		&entry.Date, &categoryID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return domain.Entry{}, err
	}
	entry.Category = categoryID
	return entry, nil
}
