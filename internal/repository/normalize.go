package repository

import "strings"

// Normalize returns the trimmed form of s. A nil field normalizes to "".
func Normalize(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// normalizeFields trims every text field of a candidate in place.
func normalizeFields(fields []*string) {
	for _, f := range fields {
		if f != nil {
			*f = Normalize(f)
		}
	}
}
