package errors

import (
	"errors"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "payload", Message: "contains no items"}

	want := "validation error on field 'payload': contains no items"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "empty"}

	if !IsValidation(err) {
		t.Error("IsValidation should recognize a ValidationError")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("IsValidation should reject a plain error")
	}
}

func TestIsValidation_Wrapped(t *testing.T) {
	err := WrapError(&ValidationError{Field: "url", Message: "empty"}, "put failed")

	if !IsValidation(err) {
		t.Error("IsValidation should see through wrapping")
	}
}

func TestIsExternalAPI(t *testing.T) {
	err := &ExternalAPIError{StatusCode: 503, Message: "down", API: "comment-page"}

	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should recognize an ExternalAPIError")
	}
	if IsExternalAPI(ErrSourceUnavailable) {
		t.Error("IsExternalAPI should reject other errors")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestWrapError_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, "while fetching")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
}
