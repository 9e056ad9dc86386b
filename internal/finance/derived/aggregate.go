package derived

import (
	"sort"
	"time"

	"fintrack/internal/finance/domain"
)

// monthBucketLimit caps the monthly series at the most recent buckets.
const monthBucketLimit = 8

// recentEntryLimit caps the recent-transactions projection.
const recentEntryLimit = 7

// unresolvedCategoryTitle labels entries whose category reference cannot be
// matched against the loaded categories.
const unresolvedCategoryTitle = "Categoria"

type Balance struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Total   float64 `json:"total"`
}

type MonthTotals struct {
	Key      string  `json:"key"`
	Month    string  `json:"month"`
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
}

// RecentEntry is a display-oriented projection of an entry with its category
// resolved.
type RecentEntry struct {
	ID            string  `json:"_id"`
	Description   string  `json:"description"`
	CategoryTitle string  `json:"categoryTitle"`
	CategoryColor string  `json:"categoryColor"`
	Expense       bool    `json:"expense"`
	Value         float64 `json:"value"`
	Amount        string  `json:"amount"`
	Date          string  `json:"date"`
}

// Abbreviated pt-BR month names, capitalized for display.
var monthLabels = [...]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// categoryIndex maps normalized category ids to their categories so every
// aggregate resolves references the same way.
func categoryIndex(categories []domain.Category) map[string]domain.Category {
	index := make(map[string]domain.Category, len(categories))
	for _, category := range categories {
		if key := NormalizeID(category.ID); key != "" {
			index[key] = category
		}
	}
	return index
}

// isExpense resolves an entry's direction. An unresolvable reference counts
// as income on purpose: a dangling reference must not inflate spending.
func isExpense(ref any, index map[string]domain.Category) bool {
	category, ok := index[NormalizeID(ref)]
	return ok && category.Expense
}

// BalanceSummary accumulates income, expense and the net total across all
// entries. Accumulation is plain float64 addition to match the numbers the
// rest of the app displays.
func BalanceSummary(entries []domain.Entry, categories []domain.Category) Balance {
	index := categoryIndex(categories)

	var balance Balance
	for _, entry := range entries {
		if isExpense(entry.Category, index) {
			balance.Expense += entry.Value
		} else {
			balance.Income += entry.Value
		}
	}
	balance.Total = balance.Income - balance.Expense
	return balance
}

// MonthlySeries buckets entries by calendar year-month and accumulates
// receitas/despesas per bucket. Buckets come back in ascending order,
// truncated to the 8 most recent; entries with unparsable dates are skipped
// since no bucket exists for them.
func MonthlySeries(entries []domain.Entry, categories []domain.Category) []MonthTotals {
	index := categoryIndex(categories)

	buckets := make(map[string]*MonthTotals)
	for _, entry := range entries {
		date, ok := ParseDate(entry.Date)
		if !ok {
			continue
		}
		key := date.Format("2006-01")
		bucket, exists := buckets[key]
		if !exists {
			bucket = &MonthTotals{Key: key, Month: monthLabels[date.Month()]}
			buckets[key] = bucket
		}
		if isExpense(entry.Category, index) {
			bucket.Despesas += entry.Value
		} else {
			bucket.Receitas += entry.Value
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > monthBucketLimit {
		keys = keys[len(keys)-monthBucketLimit:]
	}

	series := make([]MonthTotals, 0, len(keys))
	for _, key := range keys {
		series = append(series, *buckets[key])
	}
	return series
}

// UsageCounts counts entries per normalized category id. Entries whose
// reference normalizes to "" are not counted against any category.
func UsageCounts(entries []domain.Entry) map[string]int {
	counts := make(map[string]int)
	for _, entry := range entries {
		key := NormalizeID(entry.Category)
		if key == "" {
			continue
		}
		counts[key]++
	}
	return counts
}

// RecentEntries projects the 7 most recent entries by date, newest first,
// with display fields resolved. Entries with unparsable dates sort last;
// among equal dates the input order is kept.
func RecentEntries(entries []domain.Entry, categories []domain.Category) []RecentEntry {
	index := categoryIndex(categories)

	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := ParseDate(sorted[i].Date)
		dj, _ := ParseDate(sorted[j].Date)
		return di.After(dj)
	})
	if len(sorted) > recentEntryLimit {
		sorted = sorted[:recentEntryLimit]
	}

	recent := make([]RecentEntry, 0, len(sorted))
	for _, entry := range sorted {
		projection := RecentEntry{
			ID:            entry.ID,
			Description:   entry.Description,
			CategoryTitle: unresolvedCategoryTitle,
			Value:         entry.Value,
			Amount:        FormatBRL(entry.Value),
			Date:          entry.Date,
		}
		if category, ok := index[NormalizeID(entry.Category)]; ok {
			projection.CategoryTitle = category.Title
			projection.CategoryColor = category.Color
			projection.Expense = category.Expense
		}
		recent = append(recent, projection)
	}
	return recent
}
