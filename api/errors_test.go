package api_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestNewOutOfRange(t *testing.T) {
	err := api.NewOutOfRange(7, 4)
	if !errors.Is(err, api.ErrOutOfRange) {
		t.Fatal("expected errors.Is(err, ErrOutOfRange)")
	}
	if errors.Is(err, api.ErrZeroCapacity) {
		t.Fatal("out-of-range error matched ErrZeroCapacity")
	}
	if err.Code != api.ErrCodeOutOfRange {
		t.Fatalf("Code = %v", err.Code)
	}
	if msg := err.Error(); !strings.Contains(msg, "index:7") || !strings.Contains(msg, "capacity:4") {
		t.Fatalf("Error() = %q lacks context", msg)
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	err := api.NewInvalidCapacity(0)
	if !errors.Is(err, api.ErrZeroCapacity) {
		t.Fatal("expected errors.Is(err, ErrZeroCapacity)")
	}
	if err.Code.String() != "invalid_capacity" {
		t.Fatalf("Code.String() = %q", err.Code.String())
	}
}

func TestErrorWithoutContext(t *testing.T) {
	err := api.NewError(api.ErrCodeInternal, "boom")
	if err.Error() != "boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatal("Unwrap() should be nil without a cause")
	}
	if api.ErrorCode(99).String() != "code(99)" {
		t.Fatalf("unknown code string = %q", api.ErrorCode(99).String())
	}
}
