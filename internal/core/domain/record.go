package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind tags the record variants held by the store.
type Kind string

const (
	KindComplaint     Kind = "complaint"
	KindBooking       Kind = "booking"
	KindResource      Kind = "resource"
	KindEvent         Kind = "event"
	KindNotice        Kind = "notice"
	KindLostFound     Kind = "lost_found"
	KindPoll          Kind = "poll"
	KindHackathon     Kind = "hackathon"
	KindApplication   Kind = "application"
	KindBorrowRequest Kind = "borrow_request"
	KindCanteenOrder  Kind = "canteen_order"

	// KindModule tags registry entries (modules and quick actions) in search results.
	KindModule Kind = "module"
)

var kindPrefixes = map[Kind]string{
	KindComplaint:     "COMP",
	KindBooking:       "BOOK",
	KindResource:      "RES",
	KindEvent:         "EVT",
	KindNotice:        "NOT",
	KindLostFound:     "LF",
	KindPoll:          "POLL",
	KindHackathon:     "HACK",
	KindApplication:   "APP",
	KindBorrowRequest: "BR",
	KindCanteenOrder:  "ORD",
}

// Prefix returns the identifier prefix for records of this kind.
func (k Kind) Prefix() string {
	if p, ok := kindPrefixes[k]; ok {
		return p
	}
	return "REC"
}

// Record is implemented by every stored record variant.
type Record interface {
	RecordID() string
	RecordKind() Kind
	CreatedTime() time.Time
}

// Base carries the fields shared by all record kinds.
type Base struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (b Base) RecordID() string       { return b.ID }
func (b Base) CreatedTime() time.Time { return b.CreatedAt }

// Stamp assigns the identity of a freshly added record.
func (b *Base) Stamp(id string, at time.Time) {
	b.ID = id
	b.CreatedAt = at
}

// immutableFields are never overwritten by a patch.
var immutableFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
}

// guarded is implemented by kinds that keep server-managed fields out of reach of patches.
type guarded interface {
	GuardedFields() []string
}

// MergePatch shallow-merges a JSON object over current: every top-level key present
// in patch replaces the whole field, absent keys are left as they were.
// Identity fields are ignored.
func MergePatch[T any](current T, patch []byte) (T, error) {
	var zero T

	var updates map[string]json.RawMessage
	if err := json.Unmarshal(patch, &updates); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, fmt.Errorf("decode record: %w", err)
	}

	skip := make(map[string]struct{}, len(immutableFields))
	for k := range immutableFields {
		skip[k] = struct{}{}
	}
	if g, ok := any(current).(guarded); ok {
		for _, k := range g.GuardedFields() {
			skip[k] = struct{}{}
		}
	}

	for k, v := range updates {
		if _, ok := skip[k]; ok {
			continue
		}
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("encode merged record: %w", err)
	}

	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return out, nil
}
