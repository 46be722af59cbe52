// Package phoneformat holds the country calling-code registry: local digit
// limits, display formatting rules, and the continent/subregion geography of
// every country label the form offers.
//
// All lookups are total. Unknown calling codes fall back to [DefaultDigitLimit]
// and a generic grouping, unknown geography keys yield empty results.
package phoneformat

import (
	"sort"
	"strconv"
	"strings"
)

// DigitLimit returns the maximum number of local digits for a calling code,
// or DefaultDigitLimit when the code is not in the table.
func DigitLimit(code int) int {
	if limit, ok := localDigitLimits[code]; ok {
		return limit
	}
	return DefaultDigitLimit
}

// Validate reports whether local is an acceptable, possibly partial, local
// number for the calling code: digits only and no longer than the limit.
// The empty string is a valid in-progress entry.
func Validate(local string, code int) bool {
	if !isDigits(local) {
		return false
	}
	return len(local) <= DigitLimit(code)
}

// FormatDisplay groups local digits for display using the country's
// conventions. Only spaces, parentheses and hyphens are inserted, so removing
// every non-digit from the result gives back local unchanged.
func FormatDisplay(local string, code int) string {
	if local == "" {
		return ""
	}
	if formatted, ok := formatCountry(local, code); ok {
		return formatted
	}
	return formatGeneric(local)
}

func formatCountry(d string, code int) (string, bool) {
	n := len(d)
	switch code {
	case 1: // US/Canada
		if n == 10 {
			return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:], true
		}
	case 44: // UK
		switch n {
		case 10:
			return d[:4] + " " + d[4:], true
		case 11:
			return d[:5] + " " + d[5:], true
		}
	case 33: // France
		if n >= 9 {
			return strings.Join(chunk(d, 2), " "), true
		}
	case 49: // Germany
		if n >= 10 {
			return d[:4] + " " + d[4:], true
		}
	case 81: // Japan
		if n == 10 {
			return d[:2] + "-" + d[2:6] + "-" + d[6:], true
		}
	case 82: // South Korea
		if n >= 9 {
			return d[:2] + "-" + d[2:5] + "-" + d[5:], true
		}
	case 86: // China
		if n == 11 {
			return d[:3] + " " + d[3:7] + " " + d[7:], true
		}
	case 91: // India
		if n == 10 {
			return d[:5] + " " + d[5:], true
		}
	case 61: // Australia
		if n == 9 {
			return d[:1] + " " + d[1:5] + " " + d[5:], true
		}
	case 55: // Brazil
		switch n {
		case 11:
			return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:], true
		case 10:
			return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:], true
		}
	}
	return "", false
}

func formatGeneric(d string) string {
	switch n := len(d); {
	case n <= 6:
		return d
	case n <= 10:
		return d[:3] + " " + d[3:6] + " " + d[6:]
	default:
		return d[:3] + " " + d[3:6] + " " + d[6:10] + " " + d[10:]
	}
}

// chunk splits s into pieces of size n; the last piece may be shorter.
func chunk(s string, n int) []string {
	parts := make([]string, 0, (len(s)+n-1)/n)
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	return append(parts, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// StripNonDigits returns the ASCII digits of s in order.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// AllCallingCodes returns every calling code with a configured digit limit, ascending.
func AllCallingCodes() []int {
	codes := make([]int, 0, len(localDigitLimits))
	for code := range localDigitLimits {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// InternationalDisplay renders "+<code> <formatted local>".
func InternationalDisplay(local string, code int) string {
	formatted := FormatDisplay(local, code)
	if formatted == "" {
		return "+" + strconv.Itoa(code)
	}
	return "+" + strconv.Itoa(code) + " " + formatted
}
