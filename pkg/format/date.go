package format

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDatePattern is the display format used across the app
const DefaultDatePattern = "DD/MM/YYYY"

// isoDateLayout is the persisted date format
const isoDateLayout = "2006-01-02"

// Location is the dealership time zone. Vietnam has no DST, so a fixed zone is exact.
var Location = time.FixedZone("ICT", 7*60*60)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	isoDateLayout,
}

// pattern tokens, longest first so "YYYY" wins over "YY"
var dateTokens = []string{"YYYY", "YY", "MM", "M", "DD", "D", "HH", "H", "mm", "ss"}

// FormatDate formats an ISO 8601 date or timestamp with pattern (DD/MM/YYYY when empty).
// Empty or unparseable input formats as "".
func FormatDate(value, pattern string) string {
	t, ok := ParseISO(value)
	if !ok {
		return ""
	}
	return FormatTime(t, pattern)
}

// FormatTime formats t in Location with pattern (DD/MM/YYYY when empty). The zero time formats as "".
func FormatTime(t time.Time, pattern string) string {
	if t.IsZero() {
		return ""
	}
	if pattern == "" {
		pattern = DefaultDatePattern
	}
	t = t.In(Location)

	var b strings.Builder
	for i := 0; i < len(pattern); {
		token := matchToken(pattern[i:])
		if token == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, token))
		i += len(token)
	}
	return b.String()
}

// ParseISO parses an ISO 8601 date or timestamp. Values without an offset are read in Location.
func ParseISO(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, Location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDisplayDateToISO converts a DD/MM/YYYY display date to YYYY-MM-DD.
// Invalid dates give "". FormatDate(ParseDisplayDateToISO(s), "") == s for valid s.
func ParseDisplayDateToISO(display string) string {
	t, ok := ParseDisplayDate(display)
	if !ok {
		return ""
	}
	return t.Format(isoDateLayout)
}

// ParseDisplayDate parses a DD/MM/YYYY display date in Location
func ParseDisplayDate(display string) (time.Time, bool) {
	display = strings.TrimSpace(display)
	if display == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2/1/2006", display, Location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func matchToken(s string) string {
	for _, token := range dateTokens {
		if strings.HasPrefix(s, token) {
			return token
		}
	}
	return ""
}

func renderToken(t time.Time, token string) string {
	switch token {
	case "YYYY":
		return pad(t.Year(), 4)
	case "YY":
		return pad(t.Year()%100, 2)
	case "MM":
		return pad(int(t.Month()), 2)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return pad(t.Day(), 2)
	case "D":
		return strconv.Itoa(t.Day())
	case "HH":
		return pad(t.Hour(), 2)
	case "H":
		return strconv.Itoa(t.Hour())
	case "mm":
		return pad(t.Minute(), 2)
	case "ss":
		return pad(t.Second(), 2)
	}
	return token
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
