// Package normalize canonicalizes values before comparison. The canonical
// form is only ever used as an equality key, never shown to users.
package normalize

import (
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DayFormat renders a timestamp as its calendar day, discarding time-of-day.
const DayFormat = "2006-01-02"

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "Héllò" and "Hello" normalize to the same bytes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ForMatch canonicalizes a single value into a comparable form:
// timestamps become calendar-day strings, strings are whitespace-collapsed,
// trimmed, lowercased and stripped of diacritics, numbers are rounded to two
// decimals. Anything else passes through unchanged. Total and idempotent.
func ForMatch(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format(DayFormat)
	case string:
		return String(v)
	case float64:
		return Number(v)
	}
	return value
}

// String canonicalizes a string: interior whitespace runs collapse to a
// single space, the result is trimmed, lowercased, and diacritics-free.
func String(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return s
}

// Number rounds to two decimal places, half away from zero.
func Number(v float64) float64 {
	return math.Round(v*100) / 100
}
