package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestSlateError_Error(t *testing.T) {
	err := NewInvalidRequest("input path is required")
	if got := err.Error(); got != "INVALID_REQUEST: input path is required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewSuffixOverflow(t *testing.T) {
	err := NewSuffixOverflow(3, "B", 18280)
	if err.Code != ErrSuffixOverflow {
		t.Errorf("Code = %q, want %q", err.Code, ErrSuffixOverflow)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if err.Details["scene"] != 3 || err.Details["setup"] != "B" {
		t.Errorf("Details = %v", err.Details)
	}
	if !strings.Contains(err.Message, "scene 3") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewInputNotFound(t *testing.T) {
	err := NewInputNotFound("/no/such/file", errors.New("open: no such file"))
	if err.Code != ErrInputNotFound || err.Status != 404 {
		t.Errorf("got (%s, %d), want (INPUT_NOT_FOUND, 404)", err.Code, err.Status)
	}
	if err.Details["path"] != "/no/such/file" {
		t.Errorf("Details = %v", err.Details)
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestIs(t *testing.T) {
	err := NewInvalidRequest("bad")
	if !Is(err, ErrInvalidRequest) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrSuffixOverflow) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrInvalidRequest) {
		t.Error("Is should not match a plain error")
	}
}
