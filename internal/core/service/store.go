package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// Store is the application state: one RecordService per record kind, all
// sharing a mutation generation. It is built once in main and passed down.
type Store struct {
	Complaints     *RecordService[domain.Complaint, *domain.Complaint]
	Bookings       *RecordService[domain.Booking, *domain.Booking]
	Resources      *RecordService[domain.StudyResource, *domain.StudyResource]
	Events         *RecordService[domain.Event, *domain.Event]
	Notices        *RecordService[domain.Notice, *domain.Notice]
	LostFound      *RecordService[domain.LostFoundItem, *domain.LostFoundItem]
	Polls          *RecordService[domain.Poll, *domain.Poll]
	Hackathons     *RecordService[domain.Hackathon, *domain.Hackathon]
	Applications   *RecordService[domain.JobApplication, *domain.JobApplication]
	BorrowRequests *RecordService[domain.BorrowRequest, *domain.BorrowRequest]
	Orders         *RecordService[domain.CanteenOrder, *domain.CanteenOrder]

	repos ports.Repositories
	gen   *Generation
	log   zerolog.Logger
	now   func() time.Time
}

func NewStore(repos ports.Repositories, validate ports.Validator, log zerolog.Logger) *Store {
	gen := &Generation{}
	return &Store{
		Complaints:     NewRecordService[domain.Complaint, *domain.Complaint](domain.KindComplaint, repos.Complaints, validate, gen, log),
		Bookings:       NewRecordService[domain.Booking, *domain.Booking](domain.KindBooking, repos.Bookings, validate, gen, log),
		Resources:      NewRecordService[domain.StudyResource, *domain.StudyResource](domain.KindResource, repos.Resources, validate, gen, log),
		Events:         NewRecordService[domain.Event, *domain.Event](domain.KindEvent, repos.Events, validate, gen, log),
		Notices:        NewRecordService[domain.Notice, *domain.Notice](domain.KindNotice, repos.Notices, validate, gen, log),
		LostFound:      NewRecordService[domain.LostFoundItem, *domain.LostFoundItem](domain.KindLostFound, repos.LostFound, validate, gen, log),
		Polls:          NewRecordService[domain.Poll, *domain.Poll](domain.KindPoll, repos.Polls, validate, gen, log),
		Hackathons:     NewRecordService[domain.Hackathon, *domain.Hackathon](domain.KindHackathon, repos.Hackathons, validate, gen, log),
		Applications:   NewRecordService[domain.JobApplication, *domain.JobApplication](domain.KindApplication, repos.Applications, validate, gen, log),
		BorrowRequests: NewRecordService[domain.BorrowRequest, *domain.BorrowRequest](domain.KindBorrowRequest, repos.BorrowRequests, validate, gen, log),
		Orders:         NewRecordService[domain.CanteenOrder, *domain.CanteenOrder](domain.KindCanteenOrder, repos.Orders, validate, gen, log),
		repos:          repos,
		gen:            gen,
		log:            log,
		now:            time.Now,
	}
}

// Generation returns the current mutation generation.
func (s *Store) Generation() uint64 { return s.gen.Current() }

// AddComment appends a comment by who to a complaint.
func (s *Store) AddComment(ctx context.Context, complaintID, text string, who domain.Identity) (domain.Complaint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Complaint{}, domain.NewValidationError("text", "this field is required")
	}
	return s.Complaints.Apply(ctx, complaintID, func(c *domain.Complaint) error {
		c.AddComment(text, who.Name, s.now().UTC())
		return nil
	})
}

// RegisterForEvent takes a place at an event for who.
func (s *Store) RegisterForEvent(ctx context.Context, eventID string, who domain.Identity) (domain.Event, error) {
	return s.Events.Apply(ctx, eventID, func(e *domain.Event) error {
		return e.Register(who.UserID)
	})
}

// RegisterTeam registers a hackathon team led by who.
func (s *Store) RegisterTeam(ctx context.Context, hackathonID string, who domain.Identity) (domain.Hackathon, error) {
	return s.Hackathons.Apply(ctx, hackathonID, func(h *domain.Hackathon) error {
		return h.RegisterTeam(who.UserID, s.now().UTC())
	})
}

// Vote records who's ballot on a poll.
func (s *Store) Vote(ctx context.Context, pollID string, who domain.Identity, ballot domain.Ballot) (domain.Poll, error) {
	return s.Polls.Apply(ctx, pollID, func(p *domain.Poll) error {
		return p.Vote(who.UserID, ballot, s.now().UTC())
	})
}
