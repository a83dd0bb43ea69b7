package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNodeIDLength bounds node ids read from description files.
const maxNodeIDLength = 256

// ValidateSpacing checks that a spacing value is finite and non-negative.
// name identifies the spacing in the returned error.
func ValidateSpacing(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative (got %v)", name, v)
	}
	return nil
}

// ValidateSize checks that both dimensions of a size are finite and
// non-negative.
func ValidateSize(name string, width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "%s must be finite (got %vx%v)", name, width, height)
		}
		if v < 0 {
			return New(ErrCodeInvalidInput, "%s must not be negative (got %vx%v)", name, width, height)
		}
	}
	return nil
}

// ValidateRatio checks that a port ratio lies within [0, 1].
func ValidateRatio(name string, r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return New(ErrCodeInvalidInput, "%s must lie within [0, 1] (got %v)", name, r)
	}
	return nil
}

// ValidateNodeID validates a node id read from a description file.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No leading or trailing whitespace
//   - Maximum length of 256 bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if len(id) > maxNodeIDLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", maxNodeIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains invalid control characters")
		}
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "node id %q has surrounding whitespace", id)
	}
	return nil
}
