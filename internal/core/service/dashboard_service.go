package service

import (
	"context"
	"fmt"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// DashboardService computes dashboard statistics from the store on every call.
type DashboardService struct {
	store *Store
	now   func() time.Time
}

func NewDashboardService(store *Store) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context, viewer domain.Identity) (domain.DashboardStats, error) {
	var st domain.DashboardStats
	today := s.now().UTC().Format(domain.DateLayout)

	complaints, err := s.store.Complaints.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard complaints: %w", err)
	}
	st.TotalComplaints = len(complaints)
	for _, c := range complaints {
		switch c.Status {
		case domain.ComplaintOpen:
			st.ActiveComplaints++
			st.PendingComplaints++
		case domain.ComplaintInProgress:
			st.ActiveComplaints++
		case domain.ComplaintPending:
			st.PendingComplaints++
		case domain.ComplaintResolved:
			st.ResolvedComplaints++
		}
	}

	bookings, err := s.store.Bookings.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard bookings: %w", err)
	}
	for _, b := range bookings {
		if b.Status != domain.BookingConfirmed && b.Status != domain.BookingPending {
			continue
		}
		// DateLayout strings order lexically once known to parse.
		if _, err := time.Parse(domain.DateLayout, b.Date); err == nil && b.Date >= today {
			st.UpcomingBookings++
		}
	}

	if st.StudyResourcesCount, err = s.store.Resources.Count(ctx); err != nil {
		return st, fmt.Errorf("dashboard resources: %w", err)
	}

	events, err := s.store.Events.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard events: %w", err)
	}
	for _, e := range events {
		if e.IsRegistered(viewer.UserID) {
			st.EventsRegistered++
		}
	}

	orders, err := s.store.Orders.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard orders: %w", err)
	}
	for _, o := range orders {
		if o.Status == "pending" || o.Status == "preparing" {
			st.PendingOrders++
		}
	}

	items, err := s.store.LostFound.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard lost and found: %w", err)
	}
	for _, it := range items {
		if it.Status == "active" {
			st.ActiveLostFound++
		}
	}

	borrows, err := s.store.BorrowRequests.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard borrow requests: %w", err)
	}
	for _, r := range borrows {
		if r.Status == "pending" {
			st.PendingBorrowRequests++
		}
	}

	apps, err := s.store.Applications.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard applications: %w", err)
	}
	for _, a := range apps {
		if a.Active() {
			st.ActiveApplications++
		}
	}

	notices, err := s.store.Notices.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard notices: %w", err)
	}
	for _, n := range notices {
		if n.IsPinned {
			st.PinnedNotices++
		}
	}

	now := s.now()
	polls, err := s.store.Polls.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard polls: %w", err)
	}
	for _, p := range polls {
		if p.Open(now) {
			st.ActivePolls++
		}
	}

	hackathons, err := s.store.Hackathons.List(ctx)
	if err != nil {
		return st, fmt.Errorf("dashboard hackathons: %w", err)
	}
	for _, h := range hackathons {
		if h.Status == domain.HackathonRegistrationOpen {
			st.OpenHackathons++
		}
	}

	return st, nil
}
