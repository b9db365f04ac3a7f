package service

import (
	"context"
	"fmt"
	"time"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// Seed loads the sample portal data into every collection that is still empty.
// Sample records keep their fixed identifiers.
func (s *Store) Seed(ctx context.Context) error {
	steps := []struct {
		kind domain.Kind
		fn   func(context.Context) (int, error)
	}{
		{domain.KindComplaint, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Complaints, sampleComplaints()) }},
		{domain.KindBooking, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Bookings, sampleBookings()) }},
		{domain.KindResource, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Resources, sampleResources()) }},
		{domain.KindEvent, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Events, sampleEvents()) }},
		{domain.KindNotice, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Notices, sampleNotices()) }},
		{domain.KindHackathon, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Hackathons, sampleHackathons()) }},
		{domain.KindPoll, func(ctx context.Context) (int, error) { return seed(ctx, s.repos.Polls, samplePolls()) }},
	}

	for _, st := range steps {
		n, err := st.fn(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", st.kind, err)
		}
		if n > 0 {
			s.log.Info().Str("kind", string(st.kind)).Int("records", n).Msg("sample data seeded")
		}
	}

	s.gen.advance()
	return nil
}

func seed[T domain.Record](ctx context.Context, repo ports.RecordRepository[T], recs []T) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	// Insert oldest first so listing (newest first) matches the sample order.
	for i := len(recs) - 1; i >= 0; i-- {
		if err := repo.Insert(ctx, recs[i]); err != nil {
			return 0, err
		}
	}
	return len(recs), nil
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleComplaints() []domain.Complaint {
	return []domain.Complaint{
		{
			Base:        domain.Base{ID: "COMP001", CreatedAt: ts("2025-01-20T10:00:00Z")},
			Title:       "WiFi connectivity issues in Library",
			Category:    "infrastructure",
			Description: "The WiFi connection in the main library is very slow and frequently disconnects.",
			Status:      domain.ComplaintOpen,
			Priority:    "medium",
			SubmittedBy: "John Student",
			Comments:    []domain.Comment{},
		},
		{
			Base:        domain.Base{ID: "COMP002", CreatedAt: ts("2025-01-18T14:30:00Z")},
			Title:       "Broken AC in Classroom 101",
			Category:    "maintenance",
			Description: "The air conditioning unit in Classroom 101 is not working properly.",
			Status:      domain.ComplaintInProgress,
			Priority:    "high",
			SubmittedBy: "Sarah Wilson",
			AssignedTo:  "Maintenance Team",
			Comments:    []domain.Comment{},
		},
	}
}

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{
			Base:      domain.Base{ID: "BOOK001", CreatedAt: ts("2025-01-22T09:00:00Z")},
			RoomID:    "CONF001",
			RoomName:  "Conference Room A",
			Date:      "2025-01-25",
			StartTime: "14:00",
			EndTime:   "16:00",
			Purpose:   "Project presentation",
			Status:    domain.BookingConfirmed,
			BookedBy:  "John Student",
			Attendees: 8,
		},
	}
}

func sampleResources() []domain.StudyResource {
	return []domain.StudyResource{
		{
			Base:        domain.Base{ID: "RES001", CreatedAt: ts("2025-01-15T10:00:00Z")},
			Title:       "Data Structures Notes",
			Type:        "notes",
			Subject:     "Computer Science",
			Semester:    "Semester 3",
			UploadedBy:  "Prof. Smith",
			Downloads:   156,
			Rating:      4.5,
			Description: "Comprehensive notes on data structures and algorithms",
		},
	}
}

func sampleEvents() []domain.Event {
	return []domain.Event{
		{
			Base:            domain.Base{ID: "EVT001", CreatedAt: ts("2025-01-10T09:00:00Z")},
			Title:           "Tech Symposium 2025",
			Description:     "Annual technology symposium featuring industry experts",
			Date:            "2025-02-15",
			Time:            "09:00",
			Location:        "Main Auditorium",
			Category:        "technical",
			Organizer:       "Computer Science Department",
			MaxAttendees:    500,
			RegisteredCount: 234,
			Status:          domain.EventUpcoming,
			Registrants:     []string{},
		},
		{
			Base:            domain.Base{ID: "EVT002", CreatedAt: ts("2025-01-09T09:00:00Z")},
			Title:           "Cultural Night",
			Description:     "Annual cultural celebration with performances and food",
			Date:            "2025-02-20",
			Time:            "18:00",
			Location:        "Campus Grounds",
			Category:        "cultural",
			Organizer:       "Student Council",
			MaxAttendees:    1000,
			RegisteredCount: 567,
			Status:          domain.EventUpcoming,
			Registrants:     []string{},
		},
		{
			Base:            domain.Base{ID: "EVT003", CreatedAt: ts("2025-01-08T09:00:00Z")},
			Title:           "Sports Day",
			Description:     "Inter-department sports competition",
			Date:            "2025-02-25",
			Time:            "08:00",
			Location:        "Sports Complex",
			Category:        "sports",
			Organizer:       "Sports Committee",
			MaxAttendees:    800,
			RegisteredCount: 345,
			Status:          domain.EventUpcoming,
			Registrants:     []string{},
		},
	}
}

func sampleNotices() []domain.Notice {
	return []domain.Notice{
		{
			Base:        domain.Base{ID: "NOT001", CreatedAt: ts("2025-01-20T10:00:00Z")},
			Title:       "Mid-Semester Examination Schedule",
			Content:     "The mid-semester examinations will commence from February 15, 2025. Students are advised to check their exam schedules on the student portal.",
			Department:  "Computer Science",
			Year:        "All Years",
			Author:      "Dr. Sarah Johnson",
			Priority:    "high",
			Attachments: []string{"exam_schedule.pdf"},
			IsPinned:    true,
		},
		{
			Base:       domain.Base{ID: "NOT002", CreatedAt: ts("2025-01-19T14:30:00Z")},
			Title:      "Lab Equipment Maintenance Notice",
			Content:    "The computer lab will be closed for maintenance on January 25, 2025. Alternative arrangements have been made in Lab 2.",
			Department: "Computer Science",
			Year:       "2nd Year",
			Author:     "Lab Coordinator",
			Priority:   "medium",
		},
		{
			Base:        domain.Base{ID: "NOT003", CreatedAt: ts("2025-01-18T09:15:00Z")},
			Title:       "Career Guidance Workshop",
			Content:     "Join us for an interactive career guidance workshop featuring industry experts. Registration is mandatory.",
			Department:  "All Departments",
			Year:        "All Years",
			Author:      "Placement Cell",
			Priority:    "medium",
			Attachments: []string{"workshop_details.pdf"},
		},
	}
}

func sampleHackathons() []domain.Hackathon {
	return []domain.Hackathon{
		{
			Base:                 domain.Base{ID: "HACK001", CreatedAt: ts("2025-01-05T09:00:00Z")},
			Title:                "AI Innovation Challenge 2025",
			Description:          "Build innovative AI solutions to solve real-world problems. Focus on machine learning, natural language processing, and computer vision.",
			Theme:                "Artificial Intelligence & Machine Learning",
			StartDate:            ts("2025-02-15T09:00:00Z"),
			EndDate:              ts("2025-02-17T18:00:00Z"),
			RegistrationDeadline: ts("2025-02-10T23:59:59Z"),
			MaxTeamSize:          4,
			MinTeamSize:          2,
			Prizes:               domain.Prizes{First: "$5,000", Second: "$3,000", Third: "$1,500"},
			Rules: []string{
				"Teams must consist of 2-4 members",
				"All code must be original",
				"Use of external APIs is allowed",
				"Final submission must include source code and demo",
			},
			Requirements: []string{
				"Basic programming knowledge",
				"Familiarity with AI/ML concepts",
				"Laptop with development environment",
			},
			Organizer:       "Computer Science Department",
			Status:          domain.HackathonRegistrationOpen,
			RegisteredTeams: 15,
			MaxTeams:        50,
			Venue:           "Tech Hub, Main Campus",
			ContactEmail:    "hackathon@university.edu",
			Technologies:    []string{"Python", "TensorFlow", "PyTorch", "JavaScript", "React"},
			Difficulty:      "intermediate",
			Registrants:     []string{},
		},
		{
			Base:                 domain.Base{ID: "HACK002", CreatedAt: ts("2025-01-04T09:00:00Z")},
			Title:                "Web Development Sprint",
			Description:          "A 24-hour sprint to build modern, accessible web applications for campus communities.",
			Theme:                "Web Development",
			StartDate:            ts("2025-03-01T09:00:00Z"),
			EndDate:              ts("2025-03-02T09:00:00Z"),
			RegistrationDeadline: ts("2025-02-25T23:59:59Z"),
			MaxTeamSize:          3,
			MinTeamSize:          1,
			Prizes:               domain.Prizes{First: "$2,000", Second: "$1,000", Third: "$500"},
			Organizer:            "Web Development Club",
			Status:               domain.HackathonUpcoming,
			MaxTeams:             30,
			Venue:                "Innovation Lab",
			ContactEmail:         "webdev@university.edu",
			Technologies:         []string{"HTML", "CSS", "JavaScript", "Go"},
			Difficulty:           "all-levels",
			Registrants:          []string{},
		},
	}
}

func samplePolls() []domain.Poll {
	return []domain.Poll{
		{
			Base:        domain.Base{ID: "POLL001", CreatedAt: ts("2025-01-15T09:00:00Z")},
			Title:       "Library Opening Hours",
			Description: "Should the library stay open until midnight during exam weeks?",
			Type:        domain.PollYesNo,
			Status:      domain.PollActive,
			CreatedBy:   "Admin User",
			Category:    "facilities",
			Results:     map[string]int{},
			Voters:      []string{},
		},
		{
			Base:        domain.Base{ID: "POLL002", CreatedAt: ts("2025-01-12T09:00:00Z")},
			Title:       "Canteen Food Quality",
			Description: "Rate the overall food quality at the campus canteen",
			Type:        domain.PollRating,
			Status:      domain.PollActive,
			CreatedBy:   "Student Council",
			Category:    "canteen",
			Results:     map[string]int{},
			Voters:      []string{},
		},
	}
}
