package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"upper corner", 1, 1, false},
		{"edge of range", 0, 1, false},
		{"center", 0.5, 0.5, false},
		{"x too large", 1.5, 0.2, true},
		{"negative y", 0.2, -0.01, true},
		{"NaN x", math.NaN(), 0.5, true},
		{"infinite y", 0.5, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePosition("n", tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePosition(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPosition) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPosition)
			}
		})
	}
}

func TestValidatePositionNamesNode(t *testing.T) {
	err := ValidatePosition("Alaska", 2, 0)
	if err == nil || !strings.Contains(err.Error(), `"Alaska"`) {
		t.Errorf("error %v does not name the node", err)
	}
}

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default", 10, 10, false},
		{"unit", 1, 1, false},
		{"zero width", 0, 10, true},
		{"negative height", 10, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShape("n", tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateShape(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidShape) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidShape)
			}
		})
	}
}

func TestSizeLimits(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr bool
	}{
		{"unset extent", func() error { return ValidateExtent(0, 0) }, false},
		{"largest extent", func() error { return ValidateExtent(MaxExtent, MaxExtent) }, false},
		{"wide extent", func() error { return ValidateExtent(20000000, 4) }, true},
		{"negative extent", func() error { return ValidateExtent(-1, 10) }, true},
		{"largest shape", func() error { return ValidateShapeLimit("n", MaxShape, 1) }, false},
		{"tall shape", func() error { return ValidateShapeLimit("n", 4, MaxShape+1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"simple", "Alaska", false},
		{"spaces", "North West Territory", false},
		{"unicode", "Irkutsk ✓", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"newline", "a\nb", true},
		{"too long", strings.Repeat("a", MaxLabelLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "risk", false},
		{"with dash", "risk-2", false},
		{"empty", "", true},
		{"upper", "Risk", true},
		{"traversal", "../etc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
