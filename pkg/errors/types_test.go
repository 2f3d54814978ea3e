package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRegion, "region is required")

	if err == nil {
		t.Fatal("New should return non-nil error")
	}

	if err.Code != ErrCodeInvalidRegion {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRegion)
	}

	if err.Message != "region is required" {
		t.Errorf("Message = %v, want 'region is required'", err.Message)
	}

	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}

	if len(err.Stack) == 0 {
		t.Error("Stack should be captured")
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("original error")
	err := Wrap(underlying, ErrCodeConfigLoad, "failed to read config")

	if err == nil {
		t.Fatal("Wrap should return non-nil error")
	}

	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should see the underlying error")
	}

	if !strings.Contains(err.Error(), "original error") {
		t.Error("Error string should include underlying error")
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "test"); err != nil {
		t.Error("Wrap of nil should return nil")
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeInvalidTrigger, "trigger not attached")
	err.WithContext("trigger", "open")
	err.WithContext("attached", false)

	got := err.Error()
	want := "[INVALID_TRIGGER] trigger not attached {attached: false, trigger: open}"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWithUserMessageAndRemediation(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad theme").
		WithUserMessage("Unknown theme").
		WithRemediation("use default or high-contrast")

	if err.UserMessage != "Unknown theme" {
		t.Errorf("UserMessage = %q", err.UserMessage)
	}
	if len(err.Remediation) != 1 {
		t.Errorf("Remediation = %v", err.Remediation)
	}
	if err.WithRemediation() != err || len(err.Remediation) != 1 {
		t.Error("empty WithRemediation should keep existing tips")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeInvalidInitialFocus, "outside region")
	wrapped := fmt.Errorf("construct: %w", err)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"direct", err, ErrCodeInvalidInitialFocus, true},
		{"wrapped", wrapped, ErrCodeInvalidInitialFocus, true},
		{"other code", err, ErrCodeInvalidRegion, false},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want INTERNAL", got)
	}
	if got := GetCode(New(ErrCodeInvalidInput, "nil host")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %q, want INVALID_INPUT", got)
	}
}

func TestStackTrace(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	trace := err.StackTrace()
	if !strings.HasPrefix(trace, "Stack trace:") {
		t.Errorf("StackTrace() = %q", trace)
	}
	if !strings.Contains(trace, "TestStackTrace") {
		t.Error("stack should include the calling test")
	}
}

func TestStackStartsAtCaller(t *testing.T) {
	for name, err := range map[string]*Error{
		"New":  New(ErrCodeInternal, "boom"),
		"Wrap": Wrap(errors.New("cause"), ErrCodeInternal, "boom"),
	} {
		if len(err.Stack) == 0 {
			t.Fatalf("%s: empty stack", name)
		}
		first := err.Stack[0]
		if !strings.HasSuffix(first.Function, "TestStackStartsAtCaller") {
			t.Errorf("%s: first frame = %s, want the calling test", name, first.Function)
		}
		if !strings.HasSuffix(first.File, "types_test.go") || first.Line == 0 {
			t.Errorf("%s: first frame at %s:%d", name, first.File, first.Line)
		}
	}
}
