package domain

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the messages explaining why it was
// rejected. It is rendered verbatim as the body of a 400 response.
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(v[field], ", "))
	}
	return b.String()
}

// Add appends a message to the given field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}
