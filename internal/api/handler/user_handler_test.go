package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

type stubDirectory struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	deleteFn func(ctx context.Context, id string) error
	events   chan domain.DirectoryEvent
}

func (s *stubDirectory) ListUsers(ctx context.Context) ([]domain.User, error) { return s.listFn(ctx) }
func (s *stubDirectory) DeleteUser(ctx context.Context, id string) error     { return s.deleteFn(ctx, id) }

func (s *stubDirectory) Subscribe() (<-chan domain.DirectoryEvent, func()) {
	return s.events, func() {}
}

func TestUserHandler_List(t *testing.T) {
	dir := &stubDirectory{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "u-1", Email: "alice@campus.edu", PasswordHash: "$2a$secret"}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/v1/admin/users", "", &student)

	if err := NewUserHandler(dir, zerolog.Nop()).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "$2a$secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_Delete(t *testing.T) {
	dir := &stubDirectory{
		deleteFn: func(_ context.Context, id string) error {
			if id != "u-1" {
				return domain.ErrUserNotFound
			}
			return nil
		},
	}
	h := NewUserHandler(dir, zerolog.Nop())

	c, rec := newContext(http.MethodDelete, "/v1/admin/users/u-1", "", &student)
	withID(c, "u-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newContext(http.MethodDelete, "/v1/admin/users/u-2", "", &student)
	withID(c, "u-2")
	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Stream(t *testing.T) {
	dir := &stubDirectory{events: make(chan domain.DirectoryEvent, 1)}
	dir.events <- domain.DirectoryEvent{
		Type: domain.UserRegistered,
		User: domain.User{ID: "u-7", Email: "new@campus.edu"},
		At:   time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
	}
	close(dir.events)

	c, rec := newContext(http.MethodGet, "/v1/admin/users/stream", "", &student)
	if err := NewUserHandler(dir, zerolog.Nop()).Stream(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "event: directory\ndata: ") || !strings.Contains(body, `"user_registered"`) {
		t.Fatalf("unexpected stream: %q", body)
	}
}
