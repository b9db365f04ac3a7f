package memory

import (
	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// NewRepositories returns an empty in-memory repository for every record kind.
func NewRepositories() ports.Repositories {
	return ports.Repositories{
		Complaints:     NewRecordRepository[domain.Complaint](),
		Bookings:       NewRecordRepository[domain.Booking](),
		Resources:      NewRecordRepository[domain.StudyResource](),
		Events:         NewRecordRepository[domain.Event](),
		Notices:        NewRecordRepository[domain.Notice](),
		LostFound:      NewRecordRepository[domain.LostFoundItem](),
		Polls:          NewRecordRepository[domain.Poll](),
		Hackathons:     NewRecordRepository[domain.Hackathon](),
		Applications:   NewRecordRepository[domain.JobApplication](),
		BorrowRequests: NewRecordRepository[domain.BorrowRequest](),
		Orders:         NewRecordRepository[domain.CanteenOrder](),
	}
}
