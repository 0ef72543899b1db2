package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxDimension bounds container and canvas sizes accepted from users.
const MaxDimension = 10000

// ValidateChartKind checks that kind names a chart type sketchfit can draw.
func ValidateChartKind(kind string) error {
	switch kind {
	case "bar", "pie":
		return nil
	case "":
		return New(ErrCodeInvalidKind, "chart kind cannot be empty")
	default:
		return New(ErrCodeInvalidKind, "unknown chart kind %q (want bar or pie)", kind)
	}
}

// ValidateDimension checks a width or height given on the command line or in
// a request. Zero is allowed and means "not measured".
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %v)", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %d)", name, MaxDimension)
	}
	return nil
}

// ValidateLegendPosition checks a legend corner name. Empty selects the
// default corner.
func ValidateLegendPosition(pos string) error {
	switch pos {
	case "", "upLeft", "upRight", "downLeft", "downRight":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown legend position %q", pos)
}

// ValidateScale checks a legend scale factor. Zero means unset.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return New(ErrCodeInvalidConfig, "legend scale must be a non-negative number (got %v)", scale)
	}
	return nil
}

// ValidateName validates a user-supplied name, such as a dataset served by
// the preview server, that ends up as part of a file path or cache key.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "name too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..", // Parent directory
		"/",  // Path separator
		"\\", // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}
