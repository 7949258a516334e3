// Package grade converts free-form Brazilian grade strings into the
// numeric level 1-12 used to filter unit recommendations.
package grade

import (
	"strings"
	"unicode"
)

// Unknown means the grade string did not parse; callers apply no grade
// filter in that case.
const Unknown = 0

// Parse extracts a numeric grade level from strings like "9º Ano EF",
// "2º EM" or "3ª série EM". Ensino Médio years map onto 10-12 so a single
// scale covers both school stages. Returns Unknown when nothing parses.
func Parse(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unknown
	}

	n := leadingNumber(raw)
	if n == 0 {
		return Unknown
	}

	upper := strings.ToUpper(raw)
	if strings.Contains(upper, "EM") || strings.Contains(upper, "MEDIO") || strings.Contains(upper, "MÉDIO") {
		if n >= 1 && n <= 3 {
			return 9 + n
		}
		return Unknown
	}

	if n >= 1 && n <= 12 {
		return n
	}
	return Unknown
}

// leadingNumber reads the digits at the start of s.
func leadingNumber(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		seen = true
		n = n*10 + int(r-'0')
	}
	if !seen {
		return 0
	}
	return n
}
