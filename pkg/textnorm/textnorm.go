// Package textnorm provides accent and case insensitive matching for Vietnamese text.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ and Đ carry a stroke, not a combining mark, so NFD leaves them intact
var strokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// RemoveAccents strips diacritics from s, e.g. "Đà Lạt" becomes "Da Lat".
// It is idempotent and never fails; on a transform error s is returned unchanged.
func RemoveAccents(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strokeReplacer.Replace(out)
}

// Normalize returns s without accents and in lower case
func Normalize(s string) string {
	return strings.ToLower(RemoveAccents(s))
}

// Contains reports whether needle occurs in haystack ignoring accents and case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
