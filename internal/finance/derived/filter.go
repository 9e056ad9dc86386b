package derived

import (
	"strings"

	"fintrack/internal/finance/domain"
)

// Criteria is the ephemeral filter state applied to an entry listing. Every
// field is optional; an empty field places no constraint.
type Criteria struct {
	Search    string // case-insensitive substring of the description
	Category  string // category id, matched through NormalizeID
	StartDate string // inclusive calendar day, ISO date
	EndDate   string // inclusive calendar day, ISO date
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Category == "" && c.StartDate == "" && c.EndDate == ""
}

// Filter returns the entries matching every set criterion, preserving input
// order. It never mutates its input.
//
// Entries whose date does not parse match as long as no date bound is set;
// once either bound is set they fail the bound clause and drop out. The
// alternative (excluding them from all filtering) was rejected: a missing or
// garbled date says nothing about the text or category criteria.
func Filter(entries []domain.Entry, criteria Criteria) []domain.Entry {
	term := strings.ToLower(strings.TrimSpace(criteria.Search))
	wantCategory := NormalizeID(criteria.Category)

	start, hasStart := ParseDate(criteria.StartDate)
	if hasStart {
		start = startOfDay(start)
	}
	end, hasEnd := ParseDate(criteria.EndDate)
	if hasEnd {
		end = endOfDay(end)
	}

	filtered := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		if term != "" && !strings.Contains(strings.ToLower(entry.Description), term) {
			continue
		}
		if wantCategory != "" && NormalizeID(entry.Category) != wantCategory {
			continue
		}
		if hasStart || hasEnd {
			date, ok := ParseDate(entry.Date)
			if !ok {
				continue
			}
			if hasStart && date.Before(start) {
				continue
			}
			if hasEnd && date.After(end) {
				continue
			}
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
