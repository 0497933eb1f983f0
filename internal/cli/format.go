// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats an amount with the configured currency symbol and
// comma-grouped integer part. e.g., 1234567.5 -> "¥1,234,567.50".
func FormatCurrency(amount float64, symbol string) string {
	if amount < 0 {
		return "-" + FormatCurrency(-amount, symbol)
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, _ := strconv.ParseInt(s[:dot], 10, 64)
	return symbol + FormatNumber(whole) + s[dot:]
}

// FormatAmount is FormatCurrency without the symbol, for table cells.
func FormatAmount(amount float64) string {
	return FormatCurrency(amount, "")
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

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
