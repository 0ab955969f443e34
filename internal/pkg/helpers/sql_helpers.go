package helpers

import "strings"

// NullableString trims s and returns nil when nothing is left, so optional
// form fields are stored as NULL rather than as empty strings.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, treating nil as the empty string.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
