package progress

import (
	"log/slog"

	"tableflip.dev/ritual/pkg/item"
)

// Scoped is an item in view together with its effective target.
type Scoped struct {
	ID     item.ID
	Target int
}

// ScopeOf resolves the effective target of every item.
func (s *Store) ScopeOf(items []item.Effective) ([]Scoped, error) {
	targets, err := s.Targets()
	if err != nil {
		return nil, err
	}
	scope := make([]Scoped, len(items))
	for i, it := range items {
		scope[i] = Scoped{ID: it.ID, Target: resolveTarget(targets, it.ID, it.Count)}
	}
	return scope, nil
}

// AllCompleted reports whether scope is non-empty and every item in it has
// reached its target today. One skipped item is enough to say no.
func AllCompleted(scope []Scoped, counts map[item.ID]int) bool {
	if len(scope) == 0 {
		return false
	}
	for _, sc := range scope {
		if !Completed(counts[sc.ID], sc.Target) {
			return false
		}
	}
	return true
}

// Rollover resets today's counters of scope to zero once all of them are
// completed, so a finished category can be gone through again the same day.
// It reports whether the reset happened.
func (s *Store) Rollover(scope []Scoped) (bool, error) {
	counts, err := s.GetToday()
	if err != nil {
		return false, err
	}
	if !AllCompleted(scope, counts) {
		return false, nil
	}
	ids := make([]item.ID, len(scope))
	for i, sc := range scope {
		ids[i] = sc.ID
	}
	if err := s.ResetToday(ids); err != nil {
		return false, err
	}
	slog.Info("progress: rollover", "day", s.Today(), "items", len(ids))
	return true, nil
}
