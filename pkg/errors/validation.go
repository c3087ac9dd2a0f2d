package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxLabelLength bounds node and edge labels read from documents.
const MaxLabelLength = 256

// Size limits in pixels for documents and render requests.
const (
	MaxExtent = 4096 // canvas width or height
	MaxShape  = 1024 // box width or height
)

// ValidatePosition checks that a normalized position lies in [0,1]×[0,1].
// NaN coordinates are rejected.
func ValidatePosition(label string, x, y float64) error {
	if !inUnit(x) || !inUnit(y) {
		return New(ErrCodeInvalidPosition, "node %q: position (%v, %v) outside [0,1]x[0,1]", label, x, y)
	}
	return nil
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// ValidateShape checks that both box dimensions are positive.
func ValidateShape(label string, w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidShape, "node %q: shape %dx%d must have positive width and height", label, w, h)
	}
	return nil
}

// ValidateExtent checks a canvas size. Zero means unset and is allowed.
func ValidateExtent(w, h int) error {
	if w < 0 || h < 0 {
		return New(ErrCodeInvalidInput, "canvas size %dx%d cannot be negative", w, h)
	}
	if w > MaxExtent || h > MaxExtent {
		return New(ErrCodeInvalidInput, "canvas size %dx%d exceeds %dx%d", w, h, MaxExtent, MaxExtent)
	}
	return nil
}

// ValidateShapeLimit rejects boxes larger than [MaxShape] in either
// dimension.
func ValidateShapeLimit(label string, w, h int) error {
	if w > MaxShape || h > MaxShape {
		return New(ErrCodeInvalidInput, "node %q: shape %dx%d exceeds %dx%d", label, w, h, MaxShape, MaxShape)
	}
	return nil
}

// ValidateLabel validates a node identifier coming from untrusted input.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters (they would corrupt the frame)
//   - Maximum length of [MaxLabelLength] bytes
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}

	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id %q contains control characters", label)
		}
	}

	return nil
}

// ValidateName validates a short resource name such as an example or engine
// name taken from a URL path. Only lowercase letters, digits, '-' and '_'
// are allowed.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return New(ErrCodeInvalidInput, "invalid name: %q", name)
		}
	}
	return nil
}
