package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// DefaultDebounce is how long a live search waits after the last keystroke.
const DefaultDebounce = 300 * time.Millisecond

const liveSearchTimeout = 5 * time.Second

type liveSession struct {
	query   string
	state   domain.SearchState
	results []domain.SearchResult
	timer   *time.Timer
	seq     uint64
}

// LiveSearch debounces queries per user. Each Type call supersedes the
// pending one; results land only if no newer query arrived meanwhile.
type LiveSearch struct {
	search ports.SearchService
	delay  time.Duration
	log    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*liveSession
}

func NewLiveSearch(search ports.SearchService, delay time.Duration, log zerolog.Logger) *LiveSearch {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &LiveSearch{
		search:   search,
		delay:    delay,
		log:      log,
		sessions: make(map[string]*liveSession),
	}
}

// Type records a new query for userID and (re)arms the debounce timer.
// An empty query clears the session.
func (l *LiveSearch) Type(userID, query string) ports.SearchOutcome {
	q := normalizeQuery(query)
	if q == "" {
		l.Clear(userID)
		return idleOutcome()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.sessions[userID]
	if !ok {
		sess = &liveSession{}
		l.sessions[userID] = sess
	}
	if sess.timer != nil {
		sess.timer.Stop()
	}

	sess.seq++
	sess.query = q
	sess.state = domain.SearchSearching
	sess.results = nil

	seq := sess.seq
	sess.timer = time.AfterFunc(l.delay, func() { l.fire(userID, seq, q) })

	return ports.SearchOutcome{Query: q, State: domain.SearchSearching, Results: []domain.SearchResult{}}
}

// Current returns the session's state without changing it.
func (l *LiveSearch) Current(userID string) ports.SearchOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.sessions[userID]
	if !ok {
		return idleOutcome()
	}
	results := sess.results
	if results == nil {
		results = []domain.SearchResult{}
	}
	return ports.SearchOutcome{Query: sess.query, State: sess.state, Results: results}
}

// Clear resets userID's session to idle and cancels any pending search.
func (l *LiveSearch) Clear(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if sess, ok := l.sessions[userID]; ok {
		if sess.timer != nil {
			sess.timer.Stop()
		}
		delete(l.sessions, userID)
	}
}

// Navigate selects a shown result and clears the session.
func (l *LiveSearch) Navigate(userID, resultID string) (domain.SearchResult, error) {
	l.mu.Lock()
	sess, ok := l.sessions[userID]
	var found *domain.SearchResult
	if ok {
		for i := range sess.results {
			if sess.results[i].ID == resultID {
				r := sess.results[i]
				found = &r
				break
			}
		}
	}
	l.mu.Unlock()

	if found == nil {
		return domain.SearchResult{}, domain.ErrRecordNotFound
	}
	l.Clear(userID)
	return *found, nil
}

func (l *LiveSearch) fire(userID string, seq uint64, q string) {
	ctx, cancel := context.WithTimeout(context.Background(), liveSearchTimeout)
	defer cancel()

	out, err := l.search.Search(ctx, q)

	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.sessions[userID]
	if !ok || sess.seq != seq {
		return
	}
	sess.timer = nil
	if err != nil {
		l.log.Error().Err(err).Str("user_id", userID).Str("query", q).Msg("live search failed")
		sess.state = domain.SearchNoResults
		sess.results = nil
		return
	}
	sess.state = out.State
	sess.results = out.Results
}

func idleOutcome() ports.SearchOutcome {
	return ports.SearchOutcome{State: domain.SearchIdle, Results: []domain.SearchResult{}}
}
