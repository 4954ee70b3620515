package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
	"tableflip.dev/ritual/pkg/store/storetest"
)

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	l := New(storetest.NewMemory(), 0)
	_, err := l.ToggleFavorite(3)
	require.NoError(t, err)

	set, err := l.ToggleFavorite(1)
	require.NoError(t, err)
	assert.Equal(t, []item.ID{1, 3}, set)

	fav, err := l.IsFavorite(1)
	require.NoError(t, err)
	assert.True(t, fav)

	set, err = l.ToggleFavorite(1)
	require.NoError(t, err)
	assert.Equal(t, []item.ID{3}, set)

	fav, err = l.IsFavorite(1)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestTogglePin(t *testing.T) {
	l := New(storetest.NewMemory(), 0)
	morning := Entry{ID: "cat-morning", Type: "category", Title: "Morning", Path: "/category/morning"}
	evening := Entry{ID: "cat-evening", Type: "category", Title: "Evening", Path: "/category/evening"}

	_, err := l.TogglePin(morning)
	require.NoError(t, err)
	pins, err := l.TogglePin(evening)
	require.NoError(t, err)
	assert.Equal(t, []Entry{morning, evening}, pins)

	pins, err = l.TogglePin(Entry{ID: "cat-morning"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{evening}, pins)

	pinned, err := l.IsPinned("cat-morning")
	require.NoError(t, err)
	assert.False(t, pinned)
}

func TestAddRecentDedupesAndCaps(t *testing.T) {
	l := New(storetest.NewMemory(), 3)
	for i := 1; i <= 5; i++ {
		require.NoError(t, l.AddRecent(Entry{ID: fmt.Sprint(i)}))
	}
	recent, err := l.Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "3"}, recentIDs(recent))

	require.NoError(t, l.AddRecent(Entry{ID: "3", Title: "again"}))
	recent, err = l.Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5", "4"}, recentIDs(recent))
	assert.Equal(t, "again", recent[0].Title)
}

func TestDefaultRecentCap(t *testing.T) {
	l := New(storetest.NewMemory(), 0)
	for i := 0; i < 25; i++ {
		require.NoError(t, l.AddRecent(Entry{ID: fmt.Sprint(i)}))
	}
	recent, err := l.Recent()
	require.NoError(t, err)
	assert.Len(t, recent, store.DefaultRecentCap)
}

func TestFailedToggleLeavesSet(t *testing.T) {
	mem := storetest.NewMemory()
	l := New(mem, 0)
	_, err := l.ToggleFavorite(1)
	require.NoError(t, err)

	mem.FailWrites(store.KeyFavorites)
	_, err = l.ToggleFavorite(1)
	assert.ErrorIs(t, err, store.ErrPersistence)

	fav, err := l.IsFavorite(1)
	require.NoError(t, err)
	assert.True(t, fav)
}

func recentIDs(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
