package app

import (
	"context"
	"time"

	"tableflip.dev/ritual/pkg/item"
	"tableflip.dev/ritual/pkg/progress"
	"tableflip.dev/ritual/pkg/timeutil"
)

// Report summarises recorded progress.
type Report struct {
	Today      string                `json:"today"`
	Window     string                `json:"window"`
	Days       []progress.DaySummary `json:"days"`
	Streak     int                   `json:"streak"`
	Completed  int                   `json:"completed"`
	Skipped    int                   `json:"skipped"`
	Taps       int                   `json:"taps"`
	Unresolved int                   `json:"unresolved"`
}

// Stats builds a Report over the last window days, or every recorded day
// when window is zero. The streak always looks at the full history.
func (s *Service) Stats(ctx context.Context, window int) (Report, error) {
	if err := s.ready(); err != nil {
		return Report{}, err
	}
	targetFor, err := s.historicTargets()
	if err != nil {
		return Report{}, err
	}
	days, err := s.Progress.History(ctx, targetFor)
	if err != nil {
		return Report{}, err
	}
	today := s.Progress.Today()
	r := Report{
		Today:  today,
		Window: timeutil.FormatWindow(window),
		Streak: progress.Streak(days, today),
	}
	first := ""
	if window > 0 {
		t, err := time.Parse(progress.DayLayout, today)
		if err != nil {
			return Report{}, err
		}
		first = timeutil.FirstDay(t, window, progress.DayLayout)
	}
	for _, d := range days {
		if d.Day < first {
			continue
		}
		r.Days = append(r.Days, d)
		r.Completed += d.Completed
		r.Skipped += d.Skipped
		r.Taps += d.Taps
		r.Unresolved += d.Unresolved
	}
	return r, nil
}

// historicTargets resolves the intrinsic target of every item that still has
// a record, deleted catalog items included: an override's count, else the
// catalog count, else the custom item's count. Ids with no record are
// reported unknown.
func (s *Service) historicTargets() (func(item.ID) (int, bool), error) {
	snap, err := s.Overlay.Snapshot()
	if err != nil {
		return nil, err
	}
	custom := make(map[item.ID]int, len(snap.Custom))
	for _, c := range snap.Custom {
		custom[c.ID] = c.Count
	}
	return func(id item.ID) (int, bool) {
		if def, ok := s.Overlay.Default(id); ok {
			if o, ok := snap.Overrides[id]; ok {
				return o.Count, true
			}
			return def.Count, true
		}
		n, ok := custom[id]
		return n, ok
	}, nil
}
