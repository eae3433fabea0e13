package isptranslator

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "text", Message: "must not be empty"}

	if err.Error() != "validation error: text: must not be empty" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	// Without field
	err2 := &ValidationError{Message: "bad input"}
	if err2.Error() != "validation error: bad input" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestProviderError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderError{Message: "API call failed", Cause: cause, Retryable: true}

	if err.Error() != "provider error: API call failed: connection refused" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !err.Retryable {
		t.Error("error should be retryable")
	}

	// Without cause
	err2 := &ProviderError{Message: "empty response"}
	if err2.Error() != "provider error: empty response" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := &StoreError{Op: "get", Cause: cause}

	if err.Error() != "store get error: disk I/O error" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the cause through Unwrap")
	}
}
