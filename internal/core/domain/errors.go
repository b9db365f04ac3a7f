package domain

import (
	"errors"
	"sort"
	"strings"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrDuplicateRecord = errors.New("record already exists")
var ErrInvalidPatch = errors.New("invalid patch")
var ErrForbidden = errors.New("access forbidden")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrBuiltinAccount = errors.New("built-in accounts cannot be modified")

var ErrAlreadyRegistered = errors.New("already registered")
var ErrCapacityReached = errors.New("capacity reached")
var ErrRegistrationClosed = errors.New("registration closed")
var ErrPollClosed = errors.New("poll is not accepting votes")
var ErrAlreadyVoted = errors.New("already voted")
var ErrInvalidVote = errors.New("invalid vote")

// ValidationError reports per-field validation failures keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
