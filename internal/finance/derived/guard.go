package derived

import (
	"fintrack/internal/finance/domain"
)

// DeleteCheck is the result of the category delete guard.
type DeleteCheck struct {
	Allowed       bool `json:"allowed"`
	BlockingCount int  `json:"blockingCount"`
}

// CanDelete reports whether a category may be deleted, i.e. no entry still
// references it. The check is advisory: it is recomputed from whatever entry
// collection the caller holds, so a concurrent insert from another session
// can still slip past it. The database remains the authority.
func CanDelete(categoryID string, entries []domain.Entry) DeleteCheck {
	count := UsageCounts(entries)[NormalizeID(categoryID)]
	return DeleteCheck{Allowed: count == 0, BlockingCount: count}
}
