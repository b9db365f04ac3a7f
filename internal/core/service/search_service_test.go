package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func seededSearch(t *testing.T, limit int) (*Store, *SearchService) {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background()))
	return store, NewSearchService(store, NewSearchCache(16, 0), limit, discardLogger)
}

func titles(rs []domain.SearchResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}

func TestSearch_EmptyQueryIsIdle(t *testing.T) {
	_, svc := seededSearch(t, 10)

	for _, q := range []string{"", "   ", "\t"} {
		out, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, domain.SearchIdle, out.State)
		assert.Empty(t, out.Results)
	}
}

func TestSearch_Room(t *testing.T) {
	_, svc := seededSearch(t, 50)

	out, err := svc.Search(context.Background(), "Room")
	require.NoError(t, err)
	require.Equal(t, domain.SearchResults, out.State)
	assert.Equal(t, "room", out.Query)

	var sawModule, sawBooking bool
	for _, r := range out.Results {
		if r.Kind == domain.KindModule && r.Title == "Room Booking" {
			sawModule = true
		}
		if r.ID == "BOOK001" {
			sawBooking = true
		}
	}
	assert.True(t, sawModule, "Room Booking module missing from %v", titles(out.Results))
	assert.True(t, sawBooking, "booking record missing from %v", titles(out.Results))
	assert.Equal(t, "Room Booking", out.Results[0].Title, "title prefix match should rank first")
}

func TestSearch_CaseInsensitiveAcrossFields(t *testing.T) {
	_, svc := seededSearch(t, 50)

	upper, err := svc.Search(context.Background(), "CANTEEN")
	require.NoError(t, err)
	lower, err := svc.Search(context.Background(), "canteen")
	require.NoError(t, err)

	assert.Equal(t, titles(lower.Results), titles(upper.Results))
	assert.NotEmpty(t, lower.Results)
}

func TestSearch_NoResults(t *testing.T) {
	_, svc := seededSearch(t, 10)

	out, err := svc.Search(context.Background(), "zzzz-no-such-thing")
	require.NoError(t, err)
	assert.Equal(t, domain.SearchNoResults, out.State)
	assert.Empty(t, out.Results)
}

func TestSearch_RespectsLimit(t *testing.T) {
	_, svc := seededSearch(t, 3)

	out, err := svc.Search(context.Background(), "e")
	require.NoError(t, err)
	assert.Len(t, out.Results, 3)
}

func TestSearch_SeesNewRecordsImmediately(t *testing.T) {
	store, svc := seededSearch(t, 10)

	before, err := svc.Search(context.Background(), "quokka")
	require.NoError(t, err)
	require.Equal(t, domain.SearchNoResults, before.State)

	mustAdd(t, store.Complaints, domain.Complaint{Title: "Quokka in the library", Category: "other", Description: "It is very friendly"})

	after, err := svc.Search(context.Background(), "quokka")
	require.NoError(t, err)
	require.Len(t, after.Results, 1)
	assert.Equal(t, domain.KindComplaint, after.Results[0].Kind)
}

func TestRank_Ordering(t *testing.T) {
	items := []domain.Searchable{
		domain.ModuleEntry{ID: "c", Title: "Labs open late", Module: "x"},
		domain.ModuleEntry{ID: "a", Title: "Alpha lab", Module: "x"},
		domain.ModuleEntry{ID: "b", Title: "Lab", Module: "x"},
		domain.ModuleEntry{ID: "d", Title: "Chem LAB tools", Module: "x"},
		domain.ModuleEntry{ID: "e", Title: "Unrelated", Description: "mentions lab in passing", Module: "x"},
		domain.ModuleEntry{ID: "f", Title: "Nothing here", Module: "x"},
	}

	got := titles(rank("lab", items, 10))

	assert.Equal(t, []string{"Lab", "Labs open late", "Alpha lab", "Chem LAB tools", "Unrelated"}, got)
}

func TestRank_IsStableForEqualTitles(t *testing.T) {
	items := []domain.Searchable{
		domain.ModuleEntry{ID: "first", Title: "Notice", Module: "x"},
		domain.ModuleEntry{ID: "second", Title: "notice", Module: "x"},
	}

	got := rank("not", items, 10)

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestSearchCache_KeyedByGeneration(t *testing.T) {
	store, svc := seededSearch(t, 10)
	gen := store.Generation()

	_, err := svc.Search(context.Background(), "library")
	require.NoError(t, err)

	cached, ok := svc.cache.Get(strings.Join([]string{itoa(gen), "library"}, "|"))
	assert.True(t, ok)
	assert.NotEmpty(t, cached)
}
