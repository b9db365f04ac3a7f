package ports

import (
	"context"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// SearchOutcome is the state and results of a search.
type SearchOutcome struct {
	Query   string                `json:"query"`
	State   domain.SearchState    `json:"state"`
	Results []domain.SearchResult `json:"results"`
}

type SearchService interface {
	Search(ctx context.Context, query string) (SearchOutcome, error)
}

// LiveSearch keeps a debounced search session per user.
type LiveSearch interface {
	Type(userID, query string) SearchOutcome
	Current(userID string) SearchOutcome
	Clear(userID string)
	Navigate(userID, resultID string) (domain.SearchResult, error)
}

type DashboardService interface {
	Stats(ctx context.Context, viewer domain.Identity) (domain.DashboardStats, error)
}

// Validator validates a struct against its validate tags.
type Validator interface {
	Validate(i any) error
}
