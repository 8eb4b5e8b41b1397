// Package format provides currency string formatting for display output.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., "$2,395"). Estimates are displayed rounded
// to zero decimal places.
func Currency(amount float64) string {
	formatted := groupDigits(fmt.Sprintf("%.0f", math.Abs(amount)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// PreciseCurrency returns a two-decimal currency string with separators
// (e.g., "$199.58"). Used where cents matter, such as CSV output checks.
func PreciseCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(formatted, ".", 2)
	result := groupDigits(parts[0]) + "." + parts[1]
	if amount < 0 {
		return "-$" + result
	}
	return "$" + result
}

func groupDigits(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
