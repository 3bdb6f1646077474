package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidMode, "unknown sizing mode: %s", "bogus")

	if !strings.Contains(err.Error(), "INVALID_MODE") {
		t.Errorf("Error() should contain code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("Error() should contain formatted message: %s", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := Wrap(ErrCodeInvalidManifest, cause, "decode sections.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("Error() should include cause: %s", err.Error())
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeInvalidColumns, "column count must be at least 1")

	if !Is(err, ErrCodeInvalidColumns) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidColumns) {
		t.Error("Is should not match plain errors")
	}

	if got := GetCode(err); got != ErrCodeInvalidColumns {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidColumns)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidSection, "section name cannot be empty")
	if got := UserMessage(err); got != "section name cannot be empty" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestGetCodeWrappedChain(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "no manifest at path")
	outer := Wrap(ErrCodeInvalidInput, inner, "load input")

	// As finds the outermost structured error.
	if got := GetCode(outer); got != ErrCodeInvalidInput {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidInput)
	}
	if !stderrors.Is(outer, inner) {
		t.Error("wrapped chain should preserve inner error")
	}
}
