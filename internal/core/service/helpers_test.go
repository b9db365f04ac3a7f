package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/infrastructure/db/memory"
)

var discardLogger = zerolog.Nop()

// stubValidator rejects whatever validateFn rejects; a nil fn accepts everything.
type stubValidator struct {
	validateFn func(any) error
}

func (v stubValidator) Validate(i any) error {
	if v.validateFn == nil {
		return nil
	}
	return v.validateFn(i)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(memory.NewRepositories(), stubValidator{}, discardLogger)
}

// fixedClock pins every clock of the store to now.
func (s *Store) fixedClock(now time.Time) {
	clock := func() time.Time { return now }
	s.now = clock
	s.Complaints.now = clock
	s.Bookings.now = clock
	s.Resources.now = clock
	s.Events.now = clock
	s.Notices.now = clock
	s.LostFound.now = clock
	s.Polls.now = clock
	s.Hackathons.now = clock
	s.Applications.now = clock
	s.BorrowRequests.now = clock
	s.Orders.now = clock
}

func mustAdd[T domain.Record, P mutable[T]](t *testing.T, svc *RecordService[T, P], rec T) T {
	t.Helper()
	out, err := svc.Add(context.Background(), rec)
	if err != nil {
		t.Fatalf("Add(%T): %v", rec, err)
	}
	return out
}

func who(id, name string) domain.Identity {
	return domain.Identity{UserID: id, Name: name, Email: id + "@campus.edu", Role: domain.RoleStudent}
}

func itoa(n uint64) string { return strconv.FormatUint(n, 10) }
