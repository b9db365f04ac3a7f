package domain

import (
	"errors"
	"testing"
	"time"
)

func TestMergePatch_ReplacesOnlyPresentFields(t *testing.T) {
	created := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	c := Complaint{
		Base:        Base{ID: "COMP001", CreatedAt: created},
		Title:       "WiFi connectivity issues in Library",
		Category:    "infrastructure",
		Description: "slow",
		Status:      ComplaintOpen,
		Priority:    "medium",
		Comments:    []Comment{{Text: "seen", Author: "Admin User"}},
	}

	out, err := MergePatch(c, []byte(`{"status":"in-progress","assigned_to":"IT Desk"}`))
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if out.Status != ComplaintInProgress || out.AssignedTo != "IT Desk" {
		t.Fatalf("patched fields not applied: %+v", out)
	}
	if out.Title != c.Title || out.Priority != "medium" || len(out.Comments) != 1 {
		t.Fatalf("untouched fields changed: %+v", out)
	}
	if c.Status != ComplaintOpen {
		t.Fatalf("original mutated")
	}
}

func TestMergePatch_IgnoresIdentityFields(t *testing.T) {
	created := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	c := Complaint{Base: Base{ID: "COMP001", CreatedAt: created}, Title: "a"}

	out, err := MergePatch(c, []byte(`{"id":"HACKED","created_at":"2000-01-01T00:00:00Z","title":"b"}`))
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if out.ID != "COMP001" || !out.CreatedAt.Equal(created) {
		t.Fatalf("identity changed: %s %s", out.ID, out.CreatedAt)
	}
	if out.Title != "b" {
		t.Fatalf("title not patched")
	}
}

func TestMergePatch_ReplacesMapsWholesale(t *testing.T) {
	p := Poll{Base: Base{ID: "POLL1"}, Title: "t", Category: "a", Results: map[string]int{"yes": 2}}

	out, err := MergePatch(p, []byte(`{"category":"b","results":{"no":9}}`))
	if err != nil {
		t.Fatalf("MergePatch: %v", err)
	}
	if out.Category != "b" {
		t.Fatalf("category not patched")
	}
	if out.Results["yes"] != 2 || out.Results["no"] != 0 {
		t.Fatalf("guarded tallies changed: %v", out.Results)
	}
}

func TestMergePatch_RejectsMalformed(t *testing.T) {
	c := Complaint{Title: "a"}
	if _, err := MergePatch(c, []byte(`[1,2]`)); !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch, got %v", err)
	}
	if _, err := MergePatch(c, []byte(`{"title":42}`)); !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch for type mismatch, got %v", err)
	}
}
