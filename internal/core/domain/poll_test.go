package domain

import (
	"errors"
	"testing"
	"time"
)

func newActivePoll(t PollType) *Poll {
	p := &Poll{Title: "Cafeteria menu", Type: t, Options: []string{"pizza", "pasta", "salad"}}
	p.ApplyDefaults()
	return p
}

func TestPoll_Vote_MultipleChoice(t *testing.T) {
	now := time.Now()
	p := newActivePoll(PollMultipleChoice)
	p.AllowMultiple = true

	if err := p.Vote("u1", Ballot{Options: []string{"pizza", "salad"}}, now); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if p.Results["pizza"] != 1 || p.Results["salad"] != 1 || p.Results["pasta"] != 0 {
		t.Fatalf("unexpected tallies: %v", p.Results)
	}
	if p.TotalVotes != 1 {
		t.Fatalf("expected 1 vote, got %d", p.TotalVotes)
	}
}

func TestPoll_Vote_Rejections(t *testing.T) {
	now := time.Now()

	single := newActivePoll(PollMultipleChoice)
	if err := single.Vote("u1", Ballot{Options: []string{"pizza", "pasta"}}, now); !errors.Is(err, ErrInvalidVote) {
		t.Fatalf("expected ErrInvalidVote for multi-select, got %v", err)
	}
	if err := single.Vote("u1", Ballot{Options: []string{"sushi"}}, now); !errors.Is(err, ErrInvalidVote) {
		t.Fatalf("expected ErrInvalidVote for unknown option, got %v", err)
	}

	yn := newActivePoll(PollYesNo)
	if err := yn.Vote("u1", Ballot{Answer: "Yes"}, now); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if err := yn.Vote("u1", Ballot{Answer: "no"}, now); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}

	rating := newActivePoll(PollRating)
	if err := rating.Vote("u1", Ballot{Answer: "6"}, now); !errors.Is(err, ErrInvalidVote) {
		t.Fatalf("expected ErrInvalidVote for out of range rating, got %v", err)
	}

	past := now.Add(-time.Minute)
	expired := newActivePoll(PollText)
	expired.ExpiresAt = &past
	if err := expired.Vote("u1", Ballot{Answer: "more veggies"}, now); !errors.Is(err, ErrPollClosed) {
		t.Fatalf("expected ErrPollClosed, got %v", err)
	}
	if expired.TotalVotes != 0 {
		t.Fatalf("rejected vote was counted")
	}
}

func TestEvent_Register(t *testing.T) {
	e := &Event{Title: "Sports Day", MaxAttendees: 1}
	e.ApplyDefaults()

	if err := e.Register("u1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := e.Register("u1"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if err := e.Register("u2"); !errors.Is(err, ErrCapacityReached) {
		t.Fatalf("expected ErrCapacityReached, got %v", err)
	}
	if e.RegisteredCount != 1 || !e.IsRegistered("u1") {
		t.Fatalf("unexpected registration state: %+v", e)
	}
}
