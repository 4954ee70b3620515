package progress

import (
	"context"
	"time"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/store"
)

// DaySummary aggregates the counters of one day.
type DaySummary struct {
	Day        string `json:"day"`
	Taps       int    `json:"taps"`
	Completed  int    `json:"completed"`
	Skipped    int    `json:"skipped"`
	InProgress int    `json:"inProgress"`
	// Unresolved counts items tapped that day whose target can no longer be
	// found, such as deleted custom items.
	Unresolved int    `json:"unresolved"`
}

// History summarises every recorded day, oldest first. targetFor supplies the
// intrinsic target of an item and reports false for items it does not know;
// overrides are applied on top. Unknown items without an override are never
// guessed complete: skips still count as skipped and the rest as unresolved.
func (s *Store) History(ctx context.Context, targetFor func(item.ID) (int, bool)) ([]DaySummary, error) {
	targets, err := s.Targets()
	if err != nil {
		return nil, err
	}
	var out []DaySummary
	for _, key := range s.p.Keys(ctx, store.PrefixDay) {
		day, ok := store.DayForKey(key)
		if !ok {
			continue
		}
		if _, err := time.Parse(DayLayout, day); err != nil {
			continue
		}
		counts, err := s.load(day)
		if err != nil {
			return nil, err
		}
		sum := DaySummary{Day: day}
		for id, n := range counts {
			if n == SkipSentinel {
				sum.Skipped++
				continue
			}
			target, known := targets[id]
			if !known || target < 1 {
				target, known = 0, false
				if targetFor != nil {
					target, known = targetFor(id)
				}
			}
			if !known {
				if n > 0 {
					sum.Unresolved++
					sum.Taps += n
				}
				continue
			}
			switch StateOf(n, target) {
			case StateSkipped:
				sum.Skipped++
			case StateCompleted:
				sum.Completed++
				sum.Taps += n
			default:
				if n > 0 {
					sum.InProgress++
					sum.Taps += n
				}
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

// Streak counts consecutive days ending at today, or yesterday when today has
// nothing completed yet, with at least one completed item.
func Streak(history []DaySummary, today string) int {
	done := make(map[string]bool, len(history))
	for _, d := range history {
		if d.Completed > 0 {
			done[d.Day] = true
		}
	}
	day, err := time.Parse(DayLayout, today)
	if err != nil {
		return 0
	}
	if !done[today] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for done[day.Format(DayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
