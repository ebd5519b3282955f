package rea

import (
	"strings"
	"time"
)

// Layouts the tolerant first-stage parser accepts, roughly most to least
// specific.
var generalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-Jan-2006 3:04pm",
	"02-Jan-2006 15:04",
	"02-Jan-2006",
}

func parseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range generalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseModTime parses a fragment's modification time with the three-stage
// fallback: tolerant parse, then "yyyy-MM-dd-H:mm:ss" (single-digit hour
// allowed), then "yyyymmdd". Total failure yields the zero time rather
// than an error; downstream consumers sorting on it should treat the zero
// value as "unknown".
func parseModTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, ok := parseDateTime(s); ok {
		return t
	}
	if t, err := time.Parse("2006-01-02-15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse("20060102", s); err == nil {
		return t
	}
	return time.Time{}
}

// parseYesNo accepts case-insensitive yes/no text and nothing else.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, &InvalidBooleanTextError{Text: s}
}

// countryToISOCode normalizes a country value to its ISO code. REA rule:
// an omitted country means Australia, so callers default absent input to
// "AU" before reaching here. Anything outside the table is fatal for the
// enclosing fragment.
func countryToISOCode(country string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "AU", "AUS", "AUSTRALIA":
		return "AU", nil
	case "NZ", "NEW ZEALAND":
		return "NZ", nil
	}
	return "", &UnsupportedCountryError{Country: country}
}

// imageOrderToNumber maps a letter-coded image order to an integer.
// 'M' means the main photo and maps to 1; any other letter maps to its
// code point minus 63, so 'A' is 2, 'B' is 3, and so on. The inversion is
// the source schema's convention, not a bug.
func imageOrderToNumber(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0
	}
	c := strings.ToUpper(code)[0]
	if c == 'M' {
		return 1
	}
	return int(c) - 63
}
