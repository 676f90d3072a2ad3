// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount formats a USD funding amount with human-readable suffixes.
// e.g., 1234567 -> "$1.2M", 1234567890 -> "$1.2B"
func FormatAmount(amount float64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", amount/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", amount/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", amount/1_000)
	default:
		return fmt.Sprintf("$%.0f", amount)
	}
}

// FormatMillions formats a USD amount in whole millions.
// e.g., 2345678901 -> "$2,346M"
func FormatMillions(amount float64) string {
	return "$" + FormatNumber(int64(amount/1_000_000+0.5)) + "M"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatYear renders a reporting year, "????" when out of range.
func FormatYear(year int) string {
	if year < 1950 || year > 2100 {
		return "????"
	}
	return strconv.Itoa(year)
}
