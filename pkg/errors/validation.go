package errors

import (
	"strings"
	"unicode"
)

// Known sizing mode names accepted by manifests and the preview server.
const (
	ModeNameFixed     = "fixed"
	ModeNameAutomatic = "automatic"
	ModeNameAspect    = "aspect"
)

// validModeNames is the set of accepted sizing mode names.
var validModeNames = map[string]bool{
	ModeNameFixed:     true,
	ModeNameAutomatic: true,
	ModeNameAspect:    true,
}

// ValidateSectionName validates a section name from a manifest.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateSectionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSection, "section name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidSection, "section name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSection, "section name contains invalid control characters")
		}
	}

	return nil
}

// ValidateModeName validates a sizing mode name from a manifest.
func ValidateModeName(name string) error {
	if !validModeNames[strings.ToLower(name)] {
		return New(ErrCodeInvalidMode, "unknown sizing mode %q (expected fixed, automatic, or aspect)", name)
	}
	return nil
}

// ValidateColumns validates a section's column count.
// The sizing strategy divides by the column count, so zero and negative
// values are rejected before a strategy is ever constructed.
func ValidateColumns(columns int) error {
	if columns < 1 {
		return New(ErrCodeInvalidColumns, "column count must be at least 1, got %d", columns)
	}
	return nil
}

// ValidateRatio validates an aspect-ratio payload.
func ValidateRatio(ratio float64) error {
	if ratio <= 0 {
		return New(ErrCodeInvalidMode, "aspect ratio must be positive, got %g", ratio)
	}
	return nil
}

// ValidateFixedHeight validates a fixed-mode height payload.
func ValidateFixedHeight(height float64) error {
	if height < 0 {
		return New(ErrCodeInvalidMode, "fixed height cannot be negative, got %g", height)
	}
	return nil
}

// ValidateMetrics validates section metrics from a manifest.
// Negative insets or spacing would inflate the computed column width past
// the viewport, so they are rejected at parse time.
func ValidateMetrics(top, left, bottom, right, lineSpacing, interitemSpacing float64) error {
	for _, v := range []float64{top, left, bottom, right} {
		if v < 0 {
			return New(ErrCodeInvalidMetrics, "content insets cannot be negative")
		}
	}
	if lineSpacing < 0 {
		return New(ErrCodeInvalidMetrics, "line spacing cannot be negative, got %g", lineSpacing)
	}
	if interitemSpacing < 0 {
		return New(ErrCodeInvalidMetrics, "interitem spacing cannot be negative, got %g", interitemSpacing)
	}
	return nil
}
