package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// DefaultSearchLimit caps the number of results returned for a query.
const DefaultSearchLimit = 10

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campus",
		Name:      "search_total",
		Help:      "Total number of search queries, by outcome state.",
	}, []string{"state"})
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "campus",
		Name:      "search_duration_seconds",
		Help:      "Duration of search aggregation.",
		Buckets:   prometheus.DefBuckets,
	})
)

// SearchService aggregates free-text matches across the store and the
// static module registry.
type SearchService struct {
	store *Store
	cache *SearchCache
	limit int
	log   zerolog.Logger
}

func NewSearchService(store *Store, cache *SearchCache, limit int, log zerolog.Logger) *SearchService {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &SearchService{store: store, cache: cache, limit: limit, log: log}
}

// Search runs query immediately. An empty query is the idle state.
func (s *SearchService) Search(ctx context.Context, query string) (ports.SearchOutcome, error) {
	q := normalizeQuery(query)
	if q == "" {
		searchTotal.WithLabelValues(string(domain.SearchIdle)).Inc()
		return ports.SearchOutcome{State: domain.SearchIdle, Results: []domain.SearchResult{}}, nil
	}

	start := time.Now()
	defer func() { searchDuration.Observe(time.Since(start).Seconds()) }()

	key := fmt.Sprintf("%d|%s", s.store.Generation(), q)
	results, ok := s.cache.Get(key)
	if !ok {
		items, err := s.collect(ctx)
		if err != nil {
			return ports.SearchOutcome{}, fmt.Errorf("search: %w", err)
		}
		results = rank(q, items, s.limit)
		s.cache.Set(key, results)
	}

	out := ports.SearchOutcome{Query: q, State: domain.SearchResults, Results: results}
	if len(results) == 0 {
		out.State = domain.SearchNoResults
	}
	searchTotal.WithLabelValues(string(out.State)).Inc()
	s.log.Debug().Str("query", q).Int("results", len(results)).Msg("search")
	return out, nil
}

// collect gathers every searchable item: records first, then modules, then quick actions.
func (s *SearchService) collect(ctx context.Context) ([]domain.Searchable, error) {
	var items []domain.Searchable

	complaints, err := s.store.Complaints.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, complaints)

	bookings, err := s.store.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, bookings)

	resources, err := s.store.Resources.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, resources)

	events, err := s.store.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, events)

	lostFound, err := s.store.LostFound.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, lostFound)

	notices, err := s.store.Notices.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, notices)

	polls, err := s.store.Polls.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, polls)

	hackathons, err := s.store.Hackathons.List(ctx)
	if err != nil {
		return nil, err
	}
	items = appendSearchable(items, hackathons)

	items = appendSearchable(items, domain.Modules)
	items = appendSearchable(items, domain.QuickActions)
	return items, nil
}

func appendSearchable[T domain.Searchable](dst []domain.Searchable, src []T) []domain.Searchable {
	for _, v := range src {
		dst = append(dst, v)
	}
	return dst
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// rank keeps the items whose searchable fields contain q, orders them
// exact title match, then title prefix, then alphabetically by title, and
// truncates to limit. q must already be normalized.
func rank(q string, items []domain.Searchable, limit int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0)
	for _, it := range items {
		if matches(q, it.SearchFields()) {
			results = append(results, it.ToSearchResult())
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		ti, tj := strings.ToLower(results[i].Title), strings.ToLower(results[j].Title)
		if ri, rj := tier(q, ti), tier(q, tj); ri != rj {
			return ri < rj
		}
		return ti < tj
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matches(q string, fields []string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func tier(q, title string) int {
	switch {
	case title == q:
		return 0
	case strings.HasPrefix(title, q):
		return 1
	default:
		return 2
	}
}
