package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

var seedDay = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	s.fixedClock(seedDay)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return s
}

func TestStore_Seed(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	complaints, err := s.Complaints.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(complaints) != 2 || complaints[0].ID != "COMP001" {
		t.Fatalf("complaints = %+v, want COMP001 first of 2", complaints)
	}
	if n, _ := s.Orders.Count(ctx); n != 0 {
		t.Errorf("orders seeded = %d, want 0", n)
	}

	gen := s.Generation()
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if n, _ := s.Complaints.Count(ctx); n != 2 {
		t.Errorf("complaints after reseed = %d, want 2", n)
	}
	if s.Generation() <= gen {
		t.Errorf("generation did not advance after Seed")
	}
}

func TestStore_Seed_KeepsExistingData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	mine := mustAdd(t, s.Polls, domain.Poll{Title: "Parking", Type: domain.PollYesNo})

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	polls, _ := s.Polls.List(ctx)
	if len(polls) != 1 || polls[0].ID != mine.ID {
		t.Fatalf("polls = %+v, want only %s", polls, mine.ID)
	}
	if n, _ := s.Events.Count(ctx); n != 3 {
		t.Errorf("events = %d, want 3 seeded", n)
	}
}

func TestStore_AddComment(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	got, err := s.AddComment(ctx, "COMP001", "  still broken on floor 2 ", who("u1", "Alice"))
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(got.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(got.Comments))
	}
	c := got.Comments[0]
	if c.Text != "still broken on floor 2" || c.Author != "Alice" || !c.CreatedAt.Equal(seedDay) {
		t.Errorf("comment = %+v", c)
	}

	stored, _ := s.Complaints.Get(ctx, "COMP001")
	if len(stored.Comments) != 1 {
		t.Errorf("stored comments = %d, want 1", len(stored.Comments))
	}
}

func TestStore_AddComment_Errors(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	_, err := s.AddComment(ctx, "COMP001", "   ", who("u1", "Alice"))
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("blank text: err = %v, want ValidationError", err)
	}
	if _, ok := verr.Fields["text"]; !ok {
		t.Errorf("fields = %v, want text", verr.Fields)
	}

	if _, err := s.AddComment(ctx, "COMP404", "hello", who("u1", "Alice")); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("unknown complaint: err = %v, want ErrRecordNotFound", err)
	}
}

func TestStore_RegisterForEvent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ev := mustAdd(t, s.Events, domain.Event{
		Title: "Robotics Meetup", Date: "2025-03-01", Location: "Lab 4",
		Category: "technical", MaxAttendees: 1,
	})

	got, err := s.RegisterForEvent(ctx, ev.ID, who("u1", "Alice"))
	if err != nil {
		t.Fatalf("RegisterForEvent: %v", err)
	}
	if got.RegisteredCount != 1 || !got.IsRegistered("u1") {
		t.Errorf("event = %+v, want u1 registered", got)
	}

	if _, err := s.RegisterForEvent(ctx, ev.ID, who("u1", "Alice")); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Errorf("second registration: err = %v, want ErrAlreadyRegistered", err)
	}
	if _, err := s.RegisterForEvent(ctx, ev.ID, who("u2", "Bob")); !errors.Is(err, domain.ErrCapacityReached) {
		t.Errorf("full event: err = %v, want ErrCapacityReached", err)
	}

	stored, _ := s.Events.Get(ctx, ev.ID)
	if stored.RegisteredCount != 1 {
		t.Errorf("stored count = %d, want 1", stored.RegisteredCount)
	}
}

func TestStore_RegisterForEvent_Closed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, status := range []domain.EventStatus{domain.EventCompleted, domain.EventCancelled} {
		ev := mustAdd(t, s.Events, domain.Event{
			Title: "Alumni Talk", Date: "2025-01-02", Location: "Hall B",
			Category: "academic", Status: status,
		})
		if _, err := s.RegisterForEvent(ctx, ev.ID, who("u1", "Alice")); !errors.Is(err, domain.ErrRegistrationClosed) {
			t.Errorf("%s: err = %v, want ErrRegistrationClosed", status, err)
		}
	}
}

func TestStore_RegisterTeam(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	got, err := s.RegisterTeam(ctx, "HACK001", who("u1", "Alice"))
	if err != nil {
		t.Fatalf("RegisterTeam: %v", err)
	}
	if got.RegisteredTeams != 16 || len(got.Registrants) != 1 {
		t.Errorf("teams = %d registrants = %v, want 16 and [u1]", got.RegisteredTeams, got.Registrants)
	}
	if _, err := s.RegisterTeam(ctx, "HACK001", who("u1", "Alice")); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Errorf("same leader: err = %v, want ErrAlreadyRegistered", err)
	}

	s.fixedClock(time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC))
	if _, err := s.RegisterTeam(ctx, "HACK001", who("u2", "Bob")); !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Errorf("after deadline: err = %v, want ErrRegistrationClosed", err)
	}
}

func TestStore_RegisterTeam_Completed(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	if _, err := s.Hackathons.Update(ctx, "HACK002", []byte(`{"status":"completed"}`)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := s.RegisterTeam(ctx, "HACK002", who("u1", "Alice")); !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Errorf("err = %v, want ErrRegistrationClosed", err)
	}
}

func TestStore_Vote(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	got, err := s.Vote(ctx, "POLL001", who("u1", "Alice"), domain.Ballot{Answer: "Yes"})
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if got.TotalVotes != 1 || got.Results["yes"] != 1 {
		t.Errorf("poll = total %d results %v, want one yes", got.TotalVotes, got.Results)
	}

	if _, err := s.Vote(ctx, "POLL001", who("u1", "Alice"), domain.Ballot{Answer: "no"}); !errors.Is(err, domain.ErrAlreadyVoted) {
		t.Errorf("second vote: err = %v, want ErrAlreadyVoted", err)
	}
	if _, err := s.Vote(ctx, "POLL001", who("u2", "Bob"), domain.Ballot{Answer: "maybe"}); !errors.Is(err, domain.ErrInvalidVote) {
		t.Errorf("bad answer: err = %v, want ErrInvalidVote", err)
	}

	stored, _ := s.Polls.Get(ctx, "POLL001")
	if stored.TotalVotes != 1 || len(stored.Voters) != 1 {
		t.Errorf("stored poll = %+v, want a single vote", stored)
	}
}

func TestStore_Vote_Closed(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	if _, err := s.Polls.Update(ctx, "POLL002", []byte(`{"status":"closed"}`)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := s.Vote(ctx, "POLL002", who("u1", "Alice"), domain.Ballot{Answer: "4"}); !errors.Is(err, domain.ErrPollClosed) {
		t.Errorf("err = %v, want ErrPollClosed", err)
	}
}
