package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewRepositories returns a mongo-backed repository for every record kind,
// one collection per kind.
func NewRepositories(db *mongo.Database) ports.Repositories {
	return ports.Repositories{
		Complaints:     NewRecordRepository[domain.Complaint](db, "complaints"),
		Bookings:       NewRecordRepository[domain.Booking](db, "bookings"),
		Resources:      NewRecordRepository[domain.StudyResource](db, "study_resources"),
		Events:         NewRecordRepository[domain.Event](db, "events"),
		Notices:        NewRecordRepository[domain.Notice](db, "notices"),
		LostFound:      NewRecordRepository[domain.LostFoundItem](db, "lost_found_items"),
		Polls:          NewRecordRepository[domain.Poll](db, "polls"),
		Hackathons:     NewRecordRepository[domain.Hackathon](db, "hackathons"),
		Applications:   NewRecordRepository[domain.JobApplication](db, "job_applications"),
		BorrowRequests: NewRecordRepository[domain.BorrowRequest](db, "borrow_requests"),
		Orders:         NewRecordRepository[domain.CanteenOrder](db, "canteen_orders"),
	}
}

// EnsureIndexes creates indexes for every repository that declares them.
func EnsureIndexes(ctx context.Context, repos ports.Repositories, users *UserRepository) error {
	all := []any{
		repos.Complaints, repos.Bookings, repos.Resources, repos.Events, repos.Notices,
		repos.LostFound, repos.Polls, repos.Hackathons, repos.Applications,
		repos.BorrowRequests, repos.Orders, users,
	}
	for _, r := range all {
		ix, ok := r.(indexer)
		if !ok {
			continue
		}
		if err := ix.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}
