// Package validate checks user supplied settings before they reach the
// renderer. Every failure is a *errors.ValidationError naming the field.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	clierrors "github.com/salmonumbrella/texttable/internal/errors"
)

// NonEmpty validates that a required string field is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &clierrors.ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}

// NonNegative validates that n is zero or more.
func NonNegative(field string, n int) error {
	if n < 0 {
		return &clierrors.ValidationError{Field: field, Message: fmt.Sprintf("must not be negative, got %d", n)}
	}
	return nil
}

// NonNegativeInt parses raw as a non-negative integer.
func NonNegativeInt(field, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0, &clierrors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a non-negative integer, got %q", raw),
		}
	}
	return n, nil
}

// OneOf validates that value matches one of allowed, ignoring case and
// surrounding space. It returns the matching lowercase value.
func OneOf(field, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", &clierrors.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(allowed, ", "), value),
	}
}

// Bool parses raw with strconv.ParseBool.
func Bool(field, raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, &clierrors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be true or false, got %q", raw),
		}
	}
	return b, nil
}
