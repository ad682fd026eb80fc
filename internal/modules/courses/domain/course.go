package domain

import "strings"

// Course is one enrolled course. Names are unique per user; the server
// enforces the constraint and reports collisions as errors.
type Course struct {
	Name string
}

// ParseNames splits raw multi-course input on commas and newlines, trims
// whitespace, and drops blanks. Order is preserved; duplicates are left for
// the server to reject so the user sees the authoritative message.
func ParseNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			names = append(names, name)
		}
	}
	return names
}
