package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidScene, "node %q: bad width", "side")

	if err.Code != ErrCodeInvalidScene {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScene)
	}
	if want := `INVALID_SCENE: node "side": bad width`; err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("open scene.toml: no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "load scene")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "FILE_NOT_FOUND: load scene: open scene.toml: no such file"; err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	type tc struct {
		err  error
		code Code
	}

	tests := map[string]tc{
		"direct":          {err: New(ErrCodeInvalidInput, "x"), code: ErrCodeInvalidInput},
		"outer wins":      {err: Wrap(ErrCodeInternal, New(ErrCodeInvalidScene, "inner"), "outer"), code: ErrCodeInternal},
		"fmt wrapped":     {err: fmt.Errorf("ctx: %w", New(ErrCodeCanceled, "stop")), code: ErrCodeCanceled},
		"plain error":     {err: errors.New("plain"), code: ""},
		"nil has no code": {err: nil, code: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(err, %q) = false, want true", tt.code)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "width must be positive")); got != "width must be positive" {
		t.Errorf("UserMessage() = %q, want %q", got, "width must be positive")
	}
	if got := UserMessage(errors.New("boom")); got != "boom" {
		t.Errorf("UserMessage() = %q, want %q", got, "boom")
	}
}
