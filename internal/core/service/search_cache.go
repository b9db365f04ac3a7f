package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

var (
	searchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campus",
		Name:      "search_cache_hits_total",
		Help:      "Total number of search result cache hits.",
	})
	searchCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "campus",
		Name:      "search_cache_misses_total",
		Help:      "Total number of search result cache misses.",
	})
)

// SearchCache is an expiring LRU of ranked search results. Keys embed the
// store generation, so an entry is only ever reused while the store is unchanged.
type SearchCache struct {
	cache *expirable.LRU[string, []domain.SearchResult]
}

// NewSearchCache returns a cache holding at most maxSize queries for ttl each.
// A non-positive maxSize yields a disabled cache.
func NewSearchCache(maxSize int, ttl time.Duration) *SearchCache {
	if maxSize <= 0 {
		return &SearchCache{}
	}
	return &SearchCache{cache: expirable.NewLRU[string, []domain.SearchResult](maxSize, nil, ttl)}
}

func (c *SearchCache) Get(key string) ([]domain.SearchResult, bool) {
	if c == nil || c.cache == nil {
		return nil, false
	}
	val, ok := c.cache.Get(key)
	if ok {
		searchCacheHits.Inc()
		return val, true
	}
	searchCacheMisses.Inc()
	return nil, false
}

func (c *SearchCache) Set(key string, results []domain.SearchResult) {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Add(key, results)
}
