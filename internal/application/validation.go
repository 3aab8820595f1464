package application

import (
	"fmt"
	"strconv"
	"strings"

	"bookkeeper/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "parentID" -> "parent ID")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "parentID" -> "parent ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":       "ID",
		"parentID": "parent ID",
		"name":     "name",
		"path":     "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ParseKey parses a category primary key given as text.
// Returns a ValidationError if it is not a positive integer.
func ParseKey(fieldName, value string) (domain.Key, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ValidateRequired(fieldName, value)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s, got: %s", formatFieldName(fieldName), value),
		}
	}
	return domain.Key(n), nil
}

// ParseOptionalKey parses a parent key; blank text means "no parent".
func ParseOptionalKey(fieldName, value string) (*domain.Key, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	k, err := ParseKey(fieldName, value)
	if err != nil {
		return nil, err
	}
	return domain.ParentKey(k), nil
}
