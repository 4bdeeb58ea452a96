package errors

import (
	"maps"
	"slices"
	"strings"
)

// MaxDimension bounds canvas dimensions accepted from users.
const MaxDimension = 16384

// ValidateSize rejects rectangle sizes that are not strictly positive in
// both dimensions.
func ValidateSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidSize, "size %dx%d must be positive in both dimensions", w, h)
	}
	return nil
}

// ValidateStep rejects spiral steps outside (0, 1] radians.
func ValidateStep(step float64) error {
	if !(step > 0) || step > 1 {
		return New(ErrCodeInvalidInput, "step must be in (0, 1], got %v", step)
	}
	return nil
}

// ValidateDimensions validates the canvas dimensions of a rendered cloud.
func ValidateDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidInput, "canvas %dx%d must be positive", w, h)
	}
	if w > MaxDimension || h > MaxDimension {
		return New(ErrCodeInvalidInput, "canvas %dx%d too large (max %d)", w, h, MaxDimension)
	}
	return nil
}

// ValidateFormats checks a list of output formats against the allowed set.
// An empty list is rejected.
func ValidateFormats(formats []string, allowed map[string]bool) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "at least one output format is required")
	}
	for _, f := range formats {
		if !allowed[f] {
			return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", f, joinKeys(allowed))
		}
	}
	return nil
}

// ValidateWord rejects words that cannot be rendered as a tag.
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}
	if strings.ContainsAny(word, "\x00\n\r") {
		return New(ErrCodeInvalidInput, "word %q contains control characters", word)
	}
	return nil
}

func joinKeys(m map[string]bool) string {
	return strings.Join(slices.Sorted(maps.Keys(m)), ", ")
}
