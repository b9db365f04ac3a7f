package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func newTestDashboard(s *Store, now time.Time) *DashboardService {
	d := NewDashboardService(s)
	d.now = func() time.Time { return now }
	return d
}

func TestDashboard_SeededStats(t *testing.T) {
	s := seededStore(t)
	d := newTestDashboard(s, seedDay)

	st, err := d.Stats(context.Background(), who("u1", "Alice"))
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardStats{
		ActiveComplaints:    2,
		TotalComplaints:     2,
		PendingComplaints:   1,
		UpcomingBookings:    1,
		StudyResourcesCount: 1,
		PinnedNotices:       1,
		ActivePolls:         2,
		OpenHackathons:      1,
	}, st)
}

func TestDashboard_PastBookingsAreNotUpcoming(t *testing.T) {
	s := seededStore(t)
	d := newTestDashboard(s, time.Date(2025, 1, 26, 8, 0, 0, 0, time.UTC))

	st, err := d.Stats(context.Background(), who("u1", "Alice"))
	require.NoError(t, err)
	assert.Zero(t, st.UpcomingBookings)
}

func TestDashboard_CountsPerStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	d := newTestDashboard(s, seedDay)

	for _, st := range []domain.ComplaintStatus{
		domain.ComplaintOpen, domain.ComplaintPending, domain.ComplaintInProgress,
		domain.ComplaintResolved, domain.ComplaintClosed,
	} {
		mustAdd(t, s.Complaints, domain.Complaint{Title: "t", Category: "c", Description: "d", Status: st})
	}

	booking := domain.Booking{RoomID: "R1", RoomName: "Lab", StartTime: "10:00", EndTime: "11:00", Purpose: "p"}
	for _, b := range []struct {
		date   string
		status domain.BookingStatus
	}{
		{"2025-01-20", domain.BookingPending},
		{"2025-02-01", domain.BookingConfirmed},
		{"2025-02-01", domain.BookingCancelled},
		{"2025-01-19", domain.BookingConfirmed},
		{"someday", domain.BookingConfirmed},
	} {
		booking.Date, booking.Status = b.date, b.status
		mustAdd(t, s.Bookings, booking)
	}

	item := domain.OrderItem{MenuItemID: "M1", Name: "Tea", Price: 1, Quantity: 1}
	for _, st := range []string{"pending", "preparing", "ready", "delivered"} {
		mustAdd(t, s.Orders, domain.CanteenOrder{Items: []domain.OrderItem{item}, Status: st})
	}

	for _, st := range []string{"active", "active", "resolved"} {
		mustAdd(t, s.LostFound, domain.LostFoundItem{Title: "Umbrella", Type: "lost", Status: st})
	}

	for _, st := range []string{"pending", "approved", "returned"} {
		mustAdd(t, s.BorrowRequests, domain.BorrowRequest{ToolID: "T1", ToolName: "Oscilloscope", Purpose: "lab", Status: st})
	}

	for _, st := range []domain.ApplicationStatus{
		domain.ApplicationSubmitted, domain.ApplicationShortlisted, domain.ApplicationRejected,
	} {
		mustAdd(t, s.Applications, domain.JobApplication{JobID: "J1", JobTitle: "Intern", Company: "Acme", Status: st})
	}

	expired := seedDay.Add(-time.Hour)
	mustAdd(t, s.Polls, domain.Poll{Title: "open", Type: domain.PollYesNo})
	mustAdd(t, s.Polls, domain.Poll{Title: "expired", Type: domain.PollYesNo, ExpiresAt: &expired})
	mustAdd(t, s.Polls, domain.Poll{Title: "draft", Type: domain.PollYesNo, Status: domain.PollDraft})

	ev := mustAdd(t, s.Events, domain.Event{Title: "Hack Night", Date: "2025-02-01", Location: "Lab", Category: "technical"})
	mustAdd(t, s.Events, domain.Event{Title: "Quiz", Date: "2025-02-02", Location: "Hall", Category: "academic"})
	_, err := s.RegisterForEvent(ctx, ev.ID, who("u1", "Alice"))
	require.NoError(t, err)

	st, err := d.Stats(ctx, who("u1", "Alice"))
	require.NoError(t, err)

	assert.Equal(t, 5, st.TotalComplaints)
	assert.Equal(t, 2, st.ActiveComplaints)
	assert.Equal(t, 2, st.PendingComplaints)
	assert.Equal(t, 1, st.ResolvedComplaints)
	assert.Equal(t, 2, st.UpcomingBookings)
	assert.Equal(t, 2, st.PendingOrders)
	assert.Equal(t, 2, st.ActiveLostFound)
	assert.Equal(t, 1, st.PendingBorrowRequests)
	assert.Equal(t, 2, st.ActiveApplications)
	assert.Equal(t, 1, st.ActivePolls)
	assert.Equal(t, 1, st.EventsRegistered)

	other, err := d.Stats(ctx, who("u2", "Bob"))
	require.NoError(t, err)
	assert.Zero(t, other.EventsRegistered)
}
