package handler

import (
	"errors"
	"testing"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func TestValidator_TranslatesByJSONName(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "not-an-email", Password: "short", Role: "dean"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]string{
		"name":     requiredText,
		"role":     "role must be one of: student, faculty, staff, admin, transport",
		"password": "password must be at least 8 characters, contain no spaces and not be entirely numeric",
	}
	for field, msg := range want {
		if got := verr.Fields[field]; got != msg {
			t.Errorf("%s: got %q, want %q", field, got, msg)
		}
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Errorf("expected email error in %v", verr.Fields)
	}
}

func TestValidator_RecordRules(t *testing.T) {
	v := NewValidator()

	ok := domain.Poll{Title: "Favourite language", Type: domain.PollMultipleChoice, Options: []string{"Go", "Rust"}, Status: domain.PollActive}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("valid poll rejected: %v", err)
	}

	missing := ok
	missing.Options = nil
	var verr *domain.ValidationError
	if err := v.Validate(missing); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Fields["options"] != requiredText {
		t.Errorf("options: got %q", verr.Fields["options"])
	}
}

func TestPasswordShape(t *testing.T) {
	v := NewValidator()
	tests := map[string]bool{
		"campus-secret-9": true,
		"1234567890":      false,
		"has space 123":   false,
		"short1":          false,
	}
	for pwd, valid := range tests {
		err := v.Validate(&changePasswordRequest{NewPassword: pwd})
		if (err == nil) != valid {
			t.Errorf("%q: err = %v, valid %v", pwd, err, valid)
		}
	}
}
