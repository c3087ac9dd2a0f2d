package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("graphviz: syntax error")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidShape, "node %q: shape %dx%d", "a", 0, 3), `INVALID_SHAPE: node "a": shape 0x3`},
		{"wrapped", Wrap(ErrCodeLayoutFailed, cause, "engine %s", "neato"), "LAYOUT_FAILED: engine neato: graphviz: syntax error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	wrapped := Wrap(ErrCodeLayoutFailed, cause, "engine neato")
	if !errors.Is(wrapped, cause) || errors.Unwrap(wrapped) != cause {
		t.Error("Wrap does not unwrap to its cause")
	}
}

func TestCodeLookup(t *testing.T) {
	nested := Wrap(ErrCodeLayoutFailed, New(ErrCodeInvalidPosition, "inner"), "outer")
	tests := []struct {
		name    string
		err     error
		code    Code
		message string
	}{
		{"coded", New(ErrCodeUnknownNode, "edge a->b"), ErrCodeUnknownNode, "edge a->b"},
		{"outermost code wins", nested, ErrCodeLayoutFailed, "outer"},
		{"plain", errors.New("boom"), "", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(INTERNAL_ERROR) = true")
			}
			if got := UserMessage(tt.err); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
		})
	}

	if Is(nil, ErrCodeInvalidInput) || GetCode(nil) != "" {
		t.Error("nil error carries a code")
	}
}

func TestIsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("load graph: %w", New(ErrCodeUnknownNode, "edge a->b: node %q not found", "b"))
	if !Is(err, ErrCodeUnknownNode) {
		t.Error("Is() = false through fmt.Errorf wrapping, want true")
	}
	if got := UserMessage(err); got != `edge a->b: node "b" not found` {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid position", New(ErrCodeInvalidPosition, "x"), http.StatusBadRequest},
		{"invalid shape", New(ErrCodeInvalidShape, "x"), http.StatusBadRequest},
		{"invalid format", New(ErrCodeInvalidFormat, "x"), http.StatusBadRequest},
		{"unknown node", New(ErrCodeUnknownNode, "x"), http.StatusBadRequest},
		{"not found", New(ErrCodeNotFound, "x"), http.StatusNotFound},
		{"unsupported", New(ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{"layout failed", New(ErrCodeLayoutFailed, "x"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.expected {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.expected)
			}
		})
	}
}
