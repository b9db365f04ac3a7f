package domain

import (
	"slices"
	"time"
)

type HackathonStatus string

const (
	HackathonUpcoming         HackathonStatus = "upcoming"
	HackathonRegistrationOpen HackathonStatus = "registration-open"
	HackathonOngoing          HackathonStatus = "ongoing"
	HackathonCompleted        HackathonStatus = "completed"
)

type Prizes struct {
	First  string `json:"first" bson:"first"`
	Second string `json:"second" bson:"second"`
	Third  string `json:"third" bson:"third"`
}

// Hackathon is a team competition with a registration window.
type Hackathon struct {
	Base                 `bson:",inline"`
	Title                string          `json:"title" bson:"title" validate:"required"`
	Description          string          `json:"description" bson:"description" validate:"required"`
	Theme                string          `json:"theme" bson:"theme"`
	StartDate            time.Time       `json:"start_date" bson:"start_date" validate:"required"`
	EndDate              time.Time       `json:"end_date" bson:"end_date" validate:"required,gtefield=StartDate"`
	RegistrationDeadline time.Time       `json:"registration_deadline" bson:"registration_deadline" validate:"required"`
	MaxTeamSize          int             `json:"max_team_size" bson:"max_team_size" validate:"gte=1"`
	MinTeamSize          int             `json:"min_team_size" bson:"min_team_size" validate:"gte=1,ltefield=MaxTeamSize"`
	Prizes               Prizes          `json:"prizes" bson:"prizes"`
	Rules                []string        `json:"rules,omitempty" bson:"rules,omitempty"`
	Requirements         []string        `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Organizer            string          `json:"organizer" bson:"organizer"`
	Status               HackathonStatus `json:"status" bson:"status" validate:"oneof=upcoming registration-open ongoing completed"`
	RegisteredTeams      int             `json:"registered_teams" bson:"registered_teams" validate:"gte=0"`
	MaxTeams             int             `json:"max_teams,omitempty" bson:"max_teams,omitempty" validate:"gte=0"`
	Venue                string          `json:"venue" bson:"venue"`
	ContactEmail         string          `json:"contact_email" bson:"contact_email" validate:"omitempty,email"`
	Technologies         []string        `json:"technologies,omitempty" bson:"technologies,omitempty"`
	Difficulty           string          `json:"difficulty" bson:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced all-levels"`
	Registrants          []string        `json:"registrants" bson:"registrants"`
}

func (Hackathon) RecordKind() Kind { return KindHackathon }

func (h *Hackathon) ApplyDefaults() {
	h.RegisteredTeams = 0
	h.Registrants = []string{}
	if h.Status == "" {
		h.Status = HackathonUpcoming
	}
}

func (Hackathon) GuardedFields() []string { return []string{"registrants"} }

// RegisterTeam records a team led by userID.
func (h *Hackathon) RegisterTeam(userID string, now time.Time) error {
	if h.Status != HackathonRegistrationOpen && h.Status != HackathonUpcoming {
		return ErrRegistrationClosed
	}
	if !h.RegistrationDeadline.IsZero() && now.After(h.RegistrationDeadline) {
		return ErrRegistrationClosed
	}
	if slices.Contains(h.Registrants, userID) {
		return ErrAlreadyRegistered
	}
	if h.MaxTeams > 0 && h.RegisteredTeams >= h.MaxTeams {
		return ErrCapacityReached
	}
	h.RegisteredTeams++
	h.Registrants = append(h.Registrants, userID)
	return nil
}

func (h Hackathon) SearchFields() []string {
	return []string{h.Title, h.Description, h.Theme, h.Organizer}
}

func (h Hackathon) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Theme,
		Kind:        KindHackathon,
		Module:      "hackathons",
		URL:         "/hackathons",
		Metadata:    map[string]any{"status": h.Status, "start_date": h.StartDate.Format(DateLayout)},
	}
}
