package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNameLength bounds room and opening names so labels stay drawable.
const maxNameLength = 64

// ValidateName validates a room or opening name.
//
// Names end up as drawing labels, DXF text entities and SVG group ids, so the
// rules are conservative:
//   - No empty or blank names
//   - No control characters
//   - Maximum length of 64 characters
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return Configuration("", "%s name cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return Configuration(name, "%s name too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return Configuration(name, "%s name contains invalid control characters", kind)
		}
	}

	return nil
}

// ValidatePositive checks that a named dimension is a finite number greater than zero.
func ValidatePositive(subject, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Configuration(subject, "%s must be a finite number", field)
	}
	if v <= 0 {
		return Configuration(subject, "%s must be positive, got %g", field, v)
	}
	return nil
}

// ValidateNonNegative checks that a named dimension is finite and not negative.
func ValidateNonNegative(subject, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Configuration(subject, "%s must be a finite number", field)
	}
	if v < 0 {
		return Configuration(subject, "%s must not be negative, got %g", field, v)
	}
	return nil
}
