package progress

import (
	"fmt"
	"log/slog"
	"time"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// DayLayout formats day keys.
const DayLayout = "2006-01-02"

// Store persists one counter record per day plus the target overrides.
type Store struct {
	p   store.Persistence
	now func() time.Time
	loc *time.Location
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the clock that decides which day is today.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the timezone day keys are computed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New builds a Store over p using the local timezone.
func New(p store.Persistence, opts ...Option) *Store {
	s := &Store{p: p, now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the day key of the current local calendar date, resolved on every
// call.
func (s *Store) Today() string {
	return s.now().In(s.loc).Format(DayLayout)
}

// Increment adds one to today's counter of id and returns the new value. A
// skipped item starts again from zero. There is no ceiling.
func (s *Store) Increment(id item.ID) (int, error) {
	day := s.Today()
	counts, err := s.load(day)
	if err != nil {
		return 0, err
	}
	n := counts[id]
	if n < 0 {
		n = 0
	}
	n++
	counts[id] = n
	if err := store.WriteJSON(s.p, store.DayKey(day), counts); err != nil {
		return 0, err
	}
	slog.Debug("progress: increment", "day", day, "id", id, "count", n)
	return n, nil
}

// MarkSkipped sets today's counter of id to the skip sentinel, whatever it
// held before.
func (s *Store) MarkSkipped(id item.ID) error {
	day := s.Today()
	counts, err := s.load(day)
	if err != nil {
		return err
	}
	if n, ok := counts[id]; ok && n == SkipSentinel {
		return nil
	}
	counts[id] = SkipSentinel
	return store.WriteJSON(s.p, store.DayKey(day), counts)
}

// GetToday returns a copy of today's counters.
func (s *Store) GetToday() (map[item.ID]int, error) {
	return s.load(s.Today())
}

// Day returns the counters recorded on day, formatted as DayLayout.
func (s *Store) Day(day string) (map[item.ID]int, error) {
	if _, err := time.Parse(DayLayout, day); err != nil {
		return nil, fmt.Errorf("%w: day %q", store.ErrInvalidArgument, day)
	}
	return s.load(day)
}

// ResetToday sets today's counters of ids back to zero.
func (s *Store) ResetToday(ids []item.ID) error {
	if len(ids) == 0 {
		return nil
	}
	day := s.Today()
	counts, err := s.load(day)
	if err != nil {
		return err
	}
	for _, id := range ids {
		counts[id] = 0
	}
	if err := store.WriteJSON(s.p, store.DayKey(day), counts); err != nil {
		return err
	}
	slog.Debug("progress: reset", "day", day, "items", len(ids))
	return nil
}

// SetTarget overrides the number of taps id needs to complete.
func (s *Store) SetTarget(id item.ID, target int) error {
	if target < 1 {
		return fmt.Errorf("%w: target %d", store.ErrInvalidArgument, target)
	}
	targets, err := s.Targets()
	if err != nil {
		return err
	}
	if targets[id] == target {
		return nil
	}
	targets[id] = target
	return store.WriteJSON(s.p, store.KeyTargets, targets)
}

// ClearTarget drops the target override of id.
func (s *Store) ClearTarget(id item.ID) error {
	targets, err := s.Targets()
	if err != nil {
		return err
	}
	if _, ok := targets[id]; !ok {
		return nil
	}
	delete(targets, id)
	return store.WriteJSON(s.p, store.KeyTargets, targets)
}

// Targets returns every target override.
func (s *Store) Targets() (map[item.ID]int, error) {
	targets := make(map[item.ID]int)
	if _, err := store.ReadJSON(s.p, store.KeyTargets, &targets); err != nil {
		return nil, err
	}
	if targets == nil {
		targets = make(map[item.ID]int)
	}
	return targets, nil
}

// EffectiveTarget is the override for id if one exists, else fallback.
func (s *Store) EffectiveTarget(id item.ID, fallback int) (int, error) {
	targets, err := s.Targets()
	if err != nil {
		return 0, err
	}
	return resolveTarget(targets, id, fallback), nil
}

func resolveTarget(targets map[item.ID]int, id item.ID, fallback int) int {
	if t, ok := targets[id]; ok && t > 0 {
		return t
	}
	return normalTarget(fallback)
}

func (s *Store) load(day string) (map[item.ID]int, error) {
	counts := make(map[item.ID]int)
	if _, err := store.ReadJSON(s.p, store.DayKey(day), &counts); err != nil {
		return nil, err
	}
	if counts == nil {
		counts = make(map[item.ID]int)
	}
	return counts, nil
}
