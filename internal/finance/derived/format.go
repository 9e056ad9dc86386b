package derived

import (
	"fmt"
	"math"
	"strings"
)

// FormatBRL renders a monetary value the Brazilian way, e.g. "R$ 1.234,56".
// Display only: aggregation always runs on the raw float values.
func FormatBRL(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	cents := int64(math.Round(value * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(groups, "."), frac)
}
