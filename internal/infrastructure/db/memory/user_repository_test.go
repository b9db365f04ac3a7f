package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	second := &domain.User{ID: "u2", Email: "b@campus.edu", CreatedAt: t0.Add(time.Hour)}
	first := &domain.User{ID: "u1", Email: "a@campus.edu", CreatedAt: t0}
	for _, u := range []*domain.User{second, first} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s): %v", u.ID, err)
		}
	}
	if err := repo.Create(ctx, &domain.User{ID: "u3", Email: "a@campus.edu"}); !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("duplicate email: err = %v, want ErrUserExists", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 2 || users[0].ID != "u1" {
		t.Errorf("List = %+v, want u1 first", users)
	}

	got, err := repo.FindByEmail(ctx, "b@campus.edu")
	if err != nil || got.ID != "u2" {
		t.Fatalf("FindByEmail = %+v, %v", got, err)
	}

	if err := repo.UpdatePassword(ctx, "u2", "hash"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	got, _ = repo.FindByID(ctx, "u2")
	if got.PasswordHash != "hash" {
		t.Errorf("hash = %q, want hash", got.PasswordHash)
	}

	if err := repo.Delete(ctx, "u2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for name, err := range map[string]error{
		"find":   func() error { _, err := repo.FindByID(ctx, "u2"); return err }(),
		"update": repo.UpdatePassword(ctx, "u2", "x"),
		"delete": repo.Delete(ctx, "u2"),
	} {
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("%s after delete: err = %v, want ErrUserNotFound", name, err)
		}
	}
}

func TestTokenRevoker(t *testing.T) {
	ctx := context.Background()
	r := NewTokenRevoker(10, time.Hour)

	if revoked, _ := r.IsRevoked(ctx, "jti-1"); revoked {
		t.Fatal("fresh token reported revoked")
	}
	if err := r.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if revoked, _ := r.IsRevoked(ctx, "jti-1"); !revoked {
		t.Error("revoked token not reported")
	}
	if revoked, _ := r.IsRevoked(ctx, "jti-2"); revoked {
		t.Error("unrelated token reported revoked")
	}
}
