package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
	"tableflip.dev/ritual/pkg/store/storetest"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) set(day string) {
	t, err := time.ParseInLocation(DayLayout, day, time.UTC)
	if err != nil {
		panic(err)
	}
	c.t = t.Add(9 * time.Hour)
}

func newTestStore(day string) (*Store, *fakeClock, *storetest.Memory) {
	clock := &fakeClock{}
	clock.set(day)
	mem := storetest.NewMemory()
	return New(mem, WithClock(clock.now), WithLocation(time.UTC)), clock, mem
}

func TestIncrement(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	for want := 1; want <= 3; want++ {
		n, err := s.Increment(7)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	today, err := s.GetToday()
	require.NoError(t, err)
	assert.Equal(t, map[item.ID]int{7: 3}, today)
}

func TestIncrementHasNoCeiling(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	require.NoError(t, s.SetTarget(7, 1))
	for i := 0; i < 5; i++ {
		_, err := s.Increment(7)
		require.NoError(t, err)
	}
	today, err := s.GetToday()
	require.NoError(t, err)
	assert.Equal(t, 5, today[7])
}

func TestCountersAreScopedToTheDay(t *testing.T) {
	s, clock, _ := newTestStore("2024-01-01")
	_, err := s.Increment(7)
	require.NoError(t, err)

	clock.set("2024-01-02")
	assert.Equal(t, "2024-01-02", s.Today())
	today, err := s.GetToday()
	require.NoError(t, err)
	assert.Zero(t, today[7])

	n, err := s.Increment(7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	jan1, err := s.Day("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, jan1[7])
}

func TestTodayUsesConfiguredLocation(t *testing.T) {
	tz := time.FixedZone("UTC+3", 3*60*60)
	clock := func() time.Time { return time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC) }
	s := New(storetest.NewMemory(), WithClock(clock), WithLocation(tz))
	assert.Equal(t, "2024-01-02", s.Today())
}

func TestMarkSkipped(t *testing.T) {
	s, _, mem := newTestStore("2024-05-03")
	_, err := s.Increment(7)
	require.NoError(t, err)
	_, err = s.Increment(7)
	require.NoError(t, err)

	require.NoError(t, s.MarkSkipped(7))
	today, err := s.GetToday()
	require.NoError(t, err)
	assert.Equal(t, SkipSentinel, today[7])
	assert.False(t, Remaining(today[7], 3))
	assert.False(t, Completed(today[7], 3))
	assert.True(t, Skipped(today[7]))

	writes := mem.Writes()
	require.NoError(t, s.MarkSkipped(7))
	assert.Equal(t, writes, mem.Writes(), "skipping twice writes nothing")

	n, err := s.Increment(7)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "counting restarts from zero after a skip")
}

func TestTargets(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	target, err := s.EffectiveTarget(7, 33)
	require.NoError(t, err)
	assert.Equal(t, 33, target)

	require.NoError(t, s.SetTarget(7, 100))
	target, err = s.EffectiveTarget(7, 33)
	require.NoError(t, err)
	assert.Equal(t, 100, target)

	assert.ErrorIs(t, s.SetTarget(7, 0), store.ErrInvalidArgument)

	require.NoError(t, s.ClearTarget(7))
	target, err = s.EffectiveTarget(7, 33)
	require.NoError(t, err)
	assert.Equal(t, 33, target)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateRemaining, StateOf(0, 3))
	assert.Equal(t, StateRemaining, StateOf(2, 3))
	assert.Equal(t, StateCompleted, StateOf(3, 3))
	assert.Equal(t, StateCompleted, StateOf(4, 3))
	assert.Equal(t, StateSkipped, StateOf(SkipSentinel, 3))
	assert.Equal(t, StateCompleted, StateOf(1, 0), "targets below one count as one")
}

func TestRollover(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	scope := []Scoped{{ID: 1, Target: 3}, {ID: 2, Target: 1}}

	for i := 0; i < 3; i++ {
		_, err := s.Increment(1)
		require.NoError(t, err)
	}
	rolled, err := s.Rollover(scope)
	require.NoError(t, err)
	assert.False(t, rolled, "item 2 is still outstanding")

	_, err = s.Increment(2)
	require.NoError(t, err)
	rolled, err = s.Rollover(scope)
	require.NoError(t, err)
	assert.True(t, rolled)

	today, err := s.GetToday()
	require.NoError(t, err)
	for _, sc := range scope {
		assert.Equal(t, 0, today[sc.ID])
		assert.True(t, Remaining(today[sc.ID], sc.Target))
	}
}

func TestRolloverBlockedBySkipAndEmptyScope(t *testing.T) {
	s, _, mem := newTestStore("2024-05-03")
	rolled, err := s.Rollover(nil)
	require.NoError(t, err)
	assert.False(t, rolled)

	_, err = s.Increment(1)
	require.NoError(t, err)
	require.NoError(t, s.MarkSkipped(2))
	writes := mem.Writes()

	rolled, err = s.Rollover([]Scoped{{ID: 1, Target: 1}, {ID: 2, Target: 1}})
	require.NoError(t, err)
	assert.False(t, rolled)
	assert.Equal(t, writes, mem.Writes())
}

func TestScopeOfAppliesOverrides(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	require.NoError(t, s.SetTarget(2, 9))
	scope, err := s.ScopeOf([]item.Effective{{ID: 1, Count: 3}, {ID: 2, Count: 1}})
	require.NoError(t, err)
	assert.Equal(t, []Scoped{{ID: 1, Target: 3}, {ID: 2, Target: 9}}, scope)
}

func TestHistoryAndStreak(t *testing.T) {
	s, clock, _ := newTestStore("2024-05-01")
	_, err := s.Increment(1)
	require.NoError(t, err)

	clock.set("2024-05-02")
	_, err = s.Increment(1)
	require.NoError(t, err)
	require.NoError(t, s.MarkSkipped(2))
	_, err = s.Increment(3)
	require.NoError(t, err)

	clock.set("2024-05-03")
	targetFor := func(id item.ID) (int, bool) {
		if id == 3 {
			return 10, true
		}
		return 1, true
	}
	history, err := s.History(context.Background(), targetFor)
	require.NoError(t, err)
	assert.Equal(t, []DaySummary{
		{Day: "2024-05-01", Taps: 1, Completed: 1},
		{Day: "2024-05-02", Taps: 2, Completed: 1, Skipped: 1, InProgress: 1},
	}, history)

	assert.Equal(t, 2, Streak(history, "2024-05-03"))
	assert.Equal(t, 0, Streak(history, "2024-05-10"))
}

func TestHistoryLeavesUnknownItemsUnresolved(t *testing.T) {
	s, _, _ := newTestStore("2024-05-01")
	for i := 0; i < 2; i++ {
		_, err := s.Increment(7)
		require.NoError(t, err)
	}
	require.NoError(t, s.MarkSkipped(8))
	_, err := s.Increment(9)
	require.NoError(t, err)
	require.NoError(t, s.SetTarget(9, 5))

	unknown := func(item.ID) (int, bool) { return 0, false }
	history, err := s.History(context.Background(), unknown)
	require.NoError(t, err)
	assert.Equal(t, []DaySummary{
		{Day: "2024-05-01", Taps: 3, Skipped: 1, InProgress: 1, Unresolved: 1},
	}, history, "unknown item 7 is not counted complete; item 9 resolves through its override")
}

func TestDayRejectsMalformedKey(t *testing.T) {
	s, _, _ := newTestStore("2024-05-03")
	_, err := s.Day("May 3")
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}
