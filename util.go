package datatables

import (
	"regexp"
	"strconv"
	"strings"
)

// reIndex extracts the first maximal run of decimal digits from a parameter
// key. Every recognized indexed key shape contains exactly one bracketed
// integer, so the first run is always the embedded index.
var reIndex = regexp.MustCompile(`\d+`)

// firstValue returns the first element of a parameter value list. The wire
// format sends single-valued form fields, so any further values for the
// same key are discarded. ok is false for a nil or empty list, which
// callers treat as "key not sent."
func firstValue(values []string) (value string, ok bool) {
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// parseFlag decodes a DataTables boolean flag. Only the string "true",
// compared case-insensitively, decodes to true; every other sent value
// decodes to false.
func parseFlag(value string) bool {
	return strings.EqualFold(value, "true")
}

// setInt parses value as a base-10 integer and stores it in dst. A value
// that does not parse leaves dst untouched, so the field keeps its zero
// value rather than surfacing an error.
func setInt(dst *int, value string) {
	if n, err := strconv.Atoi(value); err == nil {
		*dst = n
	}
}

// indexInKey returns the integer index embedded in an indexed parameter
// key. ok is false when the key contains no digits at all.
func indexInKey(key string) (index int, ok bool) {
	digits := reIndex.FindString(key)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
