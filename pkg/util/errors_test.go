package util

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestMissingInputError(t *testing.T) {
	err := NewMissingInputError("old-neighbors", "/tmp/run/oldneighbors.txt")

	msg := err.Error()
	if !strings.Contains(msg, "old-neighbors") {
		t.Errorf("Error message should contain source: %s", msg)
	}
	if !strings.Contains(msg, "/tmp/run/oldneighbors.txt") {
		t.Errorf("Error message should contain path: %s", msg)
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("MissingInputError should unwrap to ErrMissingInput")
	}
}

func TestMalformedLineError(t *testing.T) {
	err := NewMalformedLineError("old-interfaces", 7, 1, 2, "Ethernet0")

	msg := err.Error()
	for _, want := range []string{"old-interfaces", "line 7", "got 1", "at least 2", "Ethernet0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error message should contain %q: %s", want, msg)
		}
	}
	if !errors.Is(err, ErrMalformedLine) {
		t.Errorf("MalformedLineError should unwrap to ErrMalformedLine")
	}
}

func TestOutputWriteError(t *testing.T) {
	cause := os.ErrPermission
	err := NewOutputWriteError("output.xlsx", "20260101120000", cause)

	msg := err.Error()
	if !strings.Contains(msg, "output.xlsx") || !strings.Contains(msg, "20260101120000") {
		t.Errorf("Error message should contain path and sheet: %s", msg)
	}
	if !errors.Is(err, ErrOutputWrite) {
		t.Errorf("OutputWriteError should unwrap to ErrOutputWrite")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("OutputWriteError should unwrap to its cause")
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := NewValidationError("field is required")
		msg := err.Error()
		if !strings.Contains(msg, "field is required") {
			t.Errorf("Error message should contain the error: %s", msg)
		}
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("ValidationError should unwrap to ErrValidationFailed")
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := NewValidationError("field1 is required", "field2 is invalid", "field3 out of range")
		msg := err.Error()
		if !strings.Contains(msg, "field1") || !strings.Contains(msg, "field2") || !strings.Contains(msg, "field3") {
			t.Errorf("Error message should contain all errors: %s", msg)
		}
	})
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		v := &ValidationBuilder{}
		v.Add(true, "this should not appear")

		if err := v.Build(); err != nil {
			t.Errorf("Build() should return nil when no errors: %v", err)
		}
	})

	t.Run("chaining", func(t *testing.T) {
		err := (&ValidationBuilder{}).
			Add(false, "error1").
			Add(false, "error2").
			AddErrorf("error%d", 3).
			Build()

		if err == nil {
			t.Fatal("Expected error")
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected *ValidationError, got %T", err)
		}
		if len(validationErr.Errors) != 3 {
			t.Errorf("Expected 3 errors, got %d", len(validationErr.Errors))
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingInput,
		ErrMalformedLine,
		ErrUnreadableInput,
		ErrOutputWrite,
		ErrWorkbookBusy,
		ErrValidationFailed,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v == %v", err1, err2)
			}
		}
	}
}
