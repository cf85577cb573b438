package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
)

type samplePayload struct {
	Username string  `json:"username" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"jean","price":10}`))
	var dest samplePayload
	if err := DecodeJSONBody(r, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Username != "jean" {
		t.Fatalf("unexpected decode %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"jean","bogus":1}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"price":-1}`))
	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["username"] != "is required" {
		t.Fatalf("unexpected details %+v", details)
	}
}
