package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

type PollType string

const (
	PollMultipleChoice PollType = "multiple-choice"
	PollYesNo          PollType = "yes-no"
	PollRating         PollType = "rating"
	PollText           PollType = "text"
)

type PollStatus string

const (
	PollDraft  PollStatus = "draft"
	PollActive PollStatus = "active"
	PollClosed PollStatus = "closed"
)

// Poll collects votes or free-text feedback.
type Poll struct {
	Base          `bson:",inline"`
	Title         string         `json:"title" bson:"title" validate:"required"`
	Description   string         `json:"description" bson:"description"`
	Type          PollType       `json:"type" bson:"type" validate:"required,oneof=multiple-choice yes-no rating text"`
	Options       []string       `json:"options,omitempty" bson:"options,omitempty" validate:"required_if=Type multiple-choice,dive,required"`
	Status        PollStatus     `json:"status" bson:"status" validate:"oneof=draft active closed"`
	CreatedBy     string         `json:"created_by" bson:"created_by"`
	ExpiresAt     *time.Time     `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	Category      string         `json:"category" bson:"category"`
	IsAnonymous   bool           `json:"is_anonymous" bson:"is_anonymous"`
	AllowMultiple bool           `json:"allow_multiple" bson:"allow_multiple"`
	TotalVotes    int            `json:"total_votes" bson:"total_votes" validate:"gte=0"`
	Results       map[string]int `json:"results" bson:"results"`
	TextResponses []string       `json:"text_responses,omitempty" bson:"text_responses,omitempty"`
	Voters        []string       `json:"voters" bson:"voters"`
}

// Ballot is a single user's response to a poll. Multiple-choice polls read
// Options, every other type reads Answer.
type Ballot struct {
	Options []string
	Answer  string
}

func (Poll) RecordKind() Kind { return KindPoll }

func (p *Poll) ApplyDefaults() {
	p.TotalVotes = 0
	p.Results = map[string]int{}
	p.TextResponses = nil
	p.Voters = []string{}
	if p.Status == "" {
		p.Status = PollActive
	}
}

func (Poll) GuardedFields() []string {
	return []string{"voters", "results", "text_responses", "total_votes"}
}

// Open reports whether the poll accepts votes at the given instant.
func (p Poll) Open(now time.Time) bool {
	if p.Status != PollActive {
		return false
	}
	return p.ExpiresAt == nil || now.Before(*p.ExpiresAt)
}

// Vote tallies b for userID. Each user votes at most once.
func (p *Poll) Vote(userID string, b Ballot, now time.Time) error {
	if !p.Open(now) {
		return ErrPollClosed
	}
	if slices.Contains(p.Voters, userID) {
		return ErrAlreadyVoted
	}
	if p.Results == nil {
		p.Results = map[string]int{}
	}

	switch p.Type {
	case PollMultipleChoice:
		if len(b.Options) == 0 || (len(b.Options) > 1 && !p.AllowMultiple) {
			return ErrInvalidVote
		}
		seen := make(map[string]struct{}, len(b.Options))
		for _, o := range b.Options {
			if _, dup := seen[o]; dup || !slices.Contains(p.Options, o) {
				return ErrInvalidVote
			}
			seen[o] = struct{}{}
		}
		for _, o := range b.Options {
			p.Results[o]++
		}
	case PollYesNo:
		ans := strings.ToLower(strings.TrimSpace(b.Answer))
		if ans != "yes" && ans != "no" {
			return ErrInvalidVote
		}
		p.Results[ans]++
	case PollRating:
		n, err := strconv.Atoi(strings.TrimSpace(b.Answer))
		if err != nil || n < 1 || n > 5 {
			return ErrInvalidVote
		}
		p.Results[strconv.Itoa(n)]++
	case PollText:
		ans := strings.TrimSpace(b.Answer)
		if ans == "" {
			return ErrInvalidVote
		}
		p.TextResponses = append(p.TextResponses, ans)
	default:
		return ErrInvalidVote
	}

	p.TotalVotes++
	p.Voters = append(p.Voters, userID)
	return nil
}

func (p Poll) SearchFields() []string {
	return []string{p.Title, p.Description, p.Category}
}

func (p Poll) ToSearchResult() SearchResult {
	return SearchResult{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Kind:        KindPoll,
		Module:      "polls",
		URL:         "/polls",
		Metadata:    map[string]any{"status": p.Status, "total_votes": p.TotalVotes},
	}
}
