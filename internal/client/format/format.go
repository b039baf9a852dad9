// Package format renders member data for display.
package format

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	time.DateOnly,
}

// ParseDate accepts the ISO-8601 forms the backend emits. Times keep the
// offset they were written with.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO date as DD-MM-YYYY, or "-" when it is empty or
// unparseable.
func FormatDate(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return "-"
	}
	return t.Format("02-01-2006")
}

// FormatYYYYMMDD renders t as YYYY-MM-DD; the zero time renders as "".
func FormatYYYYMMDD(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
// Blank input is returned unchanged.
func Capitalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Op is a FormatString transformation.
type Op string

const (
	Trim            Op = "trim"
	TrimStart       Op = "trim-start"
	TrimEnd         Op = "trim-end"
	Lowercase       Op = "lowercase"
	Uppercase       Op = "uppercase"
	CapitalizeFirst Op = "capitalize-first"
	CapitalizeWords Op = "capitalize-words"
)

// FormatString applies ops to s: trims first, then case changes, in a fixed
// order regardless of the order of ops.
func FormatString(s string, ops ...Op) string {
	if s == "" {
		return ""
	}
	has := func(op Op) bool {
		for _, o := range ops {
			if o == op {
				return true
			}
		}
		return false
	}

	if has(Trim) {
		s = strings.TrimSpace(s)
	}
	if has(TrimStart) {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	if has(TrimEnd) {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}
	if has(Lowercase) {
		s = strings.ToLower(s)
	}
	if has(Uppercase) {
		s = strings.ToUpper(s)
	}
	if has(CapitalizeFirst) && s != "" {
		s = Capitalize(s)
	}
	if has(CapitalizeWords) {
		words := strings.Split(strings.ToLower(s), " ")
		for i, w := range words {
			if w == "" {
				continue
			}
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
		s = strings.Join(words, " ")
	}
	return s
}

// Truncate shortens s to maxLen runes, the last three being "...".
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	keep := maxLen - 3
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "..."
}
