package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RecordRepository keeps one record kind in process memory. Records are
// deep-copied on the way in and out so callers never share state with the table.
type RecordRepository[T domain.Record] struct {
	mu    sync.RWMutex
	order []string // newest first
	table map[string]T
}

func NewRecordRepository[T domain.Record]() *RecordRepository[T] {
	return &RecordRepository[T]{table: make(map[string]T)}
}

func (r *RecordRepository[T]) Insert(_ context.Context, rec T) error {
	c, err := clone(rec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := rec.RecordID()
	if _, exists := r.table[id]; exists {
		return domain.ErrDuplicateRecord
	}
	r.table[id] = c
	r.order = append([]string{id}, r.order...)
	return nil
}

func (r *RecordRepository[T]) Replace(_ context.Context, rec T) error {
	c, err := clone(rec)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := rec.RecordID()
	if _, exists := r.table[id]; !exists {
		return domain.ErrRecordNotFound
	}
	r.table[id] = c
	return nil
}

func (r *RecordRepository[T]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	rec, ok := r.table[id]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, domain.ErrRecordNotFound
	}
	return clone(rec)
}

func (r *RecordRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		c, err := clone(r.table[id])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *RecordRepository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.table), nil
}

func clone[T any](v T) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("clone record: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("clone record: %w", err)
	}
	return out, nil
}
