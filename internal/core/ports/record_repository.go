package ports

import (
	"context"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RecordRepository persists one record kind.
type RecordRepository[T domain.Record] interface {
	// Insert stores a new record. It returns domain.ErrDuplicateRecord when the id is taken.
	Insert(ctx context.Context, rec T) error
	// Replace overwrites an existing record. It returns domain.ErrRecordNotFound when absent.
	Replace(ctx context.Context, rec T) error
	Get(ctx context.Context, id string) (T, error)
	// List returns every record, newest first.
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int, error)
}

// Repositories bundles the repository of every record kind.
type Repositories struct {
	Complaints     RecordRepository[domain.Complaint]
	Bookings       RecordRepository[domain.Booking]
	Resources      RecordRepository[domain.StudyResource]
	Events         RecordRepository[domain.Event]
	Notices        RecordRepository[domain.Notice]
	LostFound      RecordRepository[domain.LostFoundItem]
	Polls          RecordRepository[domain.Poll]
	Hackathons     RecordRepository[domain.Hackathon]
	Applications   RecordRepository[domain.JobApplication]
	BorrowRequests RecordRepository[domain.BorrowRequest]
	Orders         RecordRepository[domain.CanteenOrder]
}
