package ports

import (
	"context"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RecordService is the add/update/read surface of one record kind.
type RecordService[T domain.Record] interface {
	Kind() domain.Kind
	Add(ctx context.Context, rec T) (T, error)
	// Update shallow-merges a JSON object over the stored record.
	Update(ctx context.Context, id string, patch []byte) (T, error)
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

// RecordActions are the record mutations that carry their own rules.
type RecordActions interface {
	AddComment(ctx context.Context, complaintID, text string, who domain.Identity) (domain.Complaint, error)
	RegisterForEvent(ctx context.Context, eventID string, who domain.Identity) (domain.Event, error)
	RegisterTeam(ctx context.Context, hackathonID string, who domain.Identity) (domain.Hackathon, error)
	Vote(ctx context.Context, pollID string, who domain.Identity, ballot domain.Ballot) (domain.Poll, error)
}
