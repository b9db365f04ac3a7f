package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

const maxIDAttempts = 3

// Generation counts store mutations. Anything derived from the store and keyed
// by the current generation is never stale.
type Generation struct {
	n atomic.Uint64
}

func (g *Generation) Current() uint64 { return g.n.Load() }

func (g *Generation) advance() { g.n.Add(1) }

// mutable is satisfied by a pointer to a record kind.
type mutable[T any] interface {
	*T
	domain.Record
	Stamp(id string, at time.Time)
	ApplyDefaults()
}

// RecordService implements add/update/read for a single record kind.
// Read-modify-write cycles are serialised so concurrent patches never
// overwrite each other.
type RecordService[T domain.Record, P mutable[T]] struct {
	kind     domain.Kind
	repo     ports.RecordRepository[T]
	validate ports.Validator
	gen      *Generation
	log      zerolog.Logger
	now      func() time.Time

	mu sync.Mutex
}

func NewRecordService[T domain.Record, P mutable[T]](
	kind domain.Kind,
	repo ports.RecordRepository[T],
	validate ports.Validator,
	gen *Generation,
	log zerolog.Logger,
) *RecordService[T, P] {
	if gen == nil {
		gen = &Generation{}
	}
	return &RecordService[T, P]{
		kind:     kind,
		repo:     repo,
		validate: validate,
		gen:      gen,
		log:      log.With().Str("kind", string(kind)).Logger(),
		now:      time.Now,
	}
}

// Kind returns the record kind served.
func (s *RecordService[T, P]) Kind() domain.Kind { return s.kind }

// Add validates rec, assigns its identity and stores it.
func (s *RecordService[T, P]) Add(ctx context.Context, rec T) (T, error) {
	var zero T

	p := P(&rec)
	p.ApplyDefaults()
	if err := s.check(rec); err != nil {
		return zero, err
	}

	now := s.now().UTC()
	for attempt := 1; ; attempt++ {
		p.Stamp(newRecordID(s.kind, now), now)

		err := s.repo.Insert(ctx, rec)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateRecord) || attempt == maxIDAttempts {
			s.log.Error().Err(err).Msg("failed to add record")
			return zero, err
		}
		s.log.Warn().Str("id", rec.RecordID()).Int("attempt", attempt).Msg("record id collision, regenerating")
	}

	s.gen.advance()
	s.log.Info().Str("id", rec.RecordID()).Msg("record added")
	return rec, nil
}

// Update shallow-merges a JSON patch over the stored record.
func (s *RecordService[T, P]) Update(ctx context.Context, id string, patch []byte) (T, error) {
	return s.modify(ctx, id, func(cur T) (T, error) {
		return domain.MergePatch(cur, patch)
	})
}

// Apply runs fn against the stored record and persists the result.
// fn sees a private copy; when it fails nothing is written.
func (s *RecordService[T, P]) Apply(ctx context.Context, id string, fn func(P) error) (T, error) {
	return s.modify(ctx, id, func(cur T) (T, error) {
		if err := fn(P(&cur)); err != nil {
			var zero T
			return zero, err
		}
		return cur, nil
	})
}

func (s *RecordService[T, P]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *RecordService[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *RecordService[T, P]) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *RecordService[T, P]) modify(ctx context.Context, id string, change func(T) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	next, err := change(cur)
	if err != nil {
		return zero, err
	}
	if err := s.check(next); err != nil {
		return zero, err
	}

	if err := s.repo.Replace(ctx, next); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("failed to update record")
		return zero, err
	}

	s.gen.advance()
	s.log.Debug().Str("id", id).Msg("record updated")
	return next, nil
}

func (s *RecordService[T, P]) check(rec T) error {
	if s.validate == nil {
		return nil
	}
	return s.validate.Validate(rec)
}

// newRecordID returns PREFIX-<unix millis base36>-<8 hex>, e.g. COMP-M5X2K1AB-3F9A0C1D.
func newRecordID(kind domain.Kind, at time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", kind.Prefix(), ts, suffix)
}
