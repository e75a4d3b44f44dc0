package engine

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// numberCleaner strips thousands separators and common currency symbols
// before numeric parsing.
var numberCleaner = strings.NewReplacer(
	",", "",
	"$", "",
	"€", "",
	"£", "",
	"₹", "",
	"¥", "",
)

// cleanNumber removes whitespace, thousands separators, and currency
// symbols from a raw cell value.
func cleanNumber(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return numberCleaner.Replace(stripped)
}

// ParseNumber parses a locale-tolerant numeric cell value, e.g. "$1,234.50".
func ParseNumber(raw string) (float64, error) {
	cleaned := cleanNumber(raw)
	if cleaned == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// IsValidNumber reports whether a raw cell value parses as a finite number
// after cleaning.
func IsValidNumber(raw string) bool {
	_, err := ParseNumber(raw)
	return err == nil
}

// DateResult is the outcome of date validation. Format is a human-readable
// label for the pattern that matched.
type DateResult struct {
	Valid  bool
	Format string
}

// datePatterns is the fixed priority list of accepted date layouts. When a
// value is structurally ambiguous (MM/DD/YYYY vs M/D/YYYY), the first
// matching pattern wins; this tie-break is deliberate, not a guess.
// Day-first European layouts handle the day/month ordering directly.
var datePatterns = []struct {
	layout string
	label  string
}{
	{"2006-01-02", "YYYY-MM-DD (ISO)"},
	{"2006-1-2", "YYYY-M-D (ISO)"},
	{"01/02/2006", "MM/DD/YYYY (US)"},
	{"1/2/2006", "M/D/YYYY (US)"},
	{"01/02/06", "MM/DD/YY (US short)"},
	{"1/2/06", "M/D/YY (US short)"},
	{"02.01.2006", "DD.MM.YYYY (European)"},
	{"2.1.2006", "D.M.YYYY (European)"},
	{"2006/01/02", "YYYY/MM/DD"},
	{"01-02-2006", "MM-DD-YYYY"},
	{"02 Jan 2006", "DD Mon YYYY"},
}

// Parsed years must fall strictly inside this window; anything outside is
// treated as a data error rather than a calendar date.
const (
	minDateYear = 1900
	maxDateYear = 2100
)

// ValidateDate checks a raw cell value against the ordered pattern list.
// A value matching no pattern, or parsing to a year outside
// (minDateYear, maxDateYear), is invalid.
func ValidateDate(raw string) DateResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DateResult{}
	}
	for _, p := range datePatterns {
		t, err := time.Parse(p.layout, s)
		if err != nil {
			continue
		}
		if y := t.Year(); y <= minDateYear || y >= maxDateYear {
			return DateResult{}
		}
		return DateResult{Valid: true, Format: p.label}
	}
	return DateResult{}
}
