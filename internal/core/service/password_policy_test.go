package service

import (
	"errors"
	"testing"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		wantErr bool
	}{
		{"accepted", "campus-secret-9", false},
		{"too short", "a1b2c3", true},
		{"whitespace", "campus secret 9", true},
		{"all digits", "1234567890", true},
		{"similar to name", "alice123", true},
		{"similar to email", "alice.smith1", true},
		{"unicode length", "ñandú-ñandú", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPassword(tt.pwd, "Alice", "alice.smith@campus.edu")
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkPassword(%q) err = %v, wantErr %v", tt.pwd, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %T, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields["password"]; !ok {
				t.Errorf("fields = %v, want password", verr.Fields)
			}
		})
	}
}

func TestSimilarity_EmptyAttribute(t *testing.T) {
	if got := similarity("anything", ""); got != 0 {
		t.Errorf("similarity = %v, want 0", got)
	}
}
