package watch

import (
	"testing"

	"tableflip.dev/ritual/pkg/store"
)

func changed(key string) store.Event {
	return store.Event{Type: store.EventRecordChanged, Key: key, Family: store.FamilyOf(key)}
}

func TestRelevant(t *testing.T) {
	const today = "2024-05-03"
	tests := map[string]struct {
		ev   store.Event
		want bool
	}{
		"invalidated":       {ev: store.Event{Type: store.EventInvalidated}, want: true},
		"override":          {ev: changed(store.KeyOverrides), want: true},
		"targets":           {ev: changed(store.KeyTargets), want: true},
		"own order":         {ev: changed(store.OrderKey("morning")), want: true},
		"other order":       {ev: changed(store.OrderKey("evening")), want: false},
		"today":             {ev: changed(store.DayKey(today)), want: true},
		"another day":       {ev: changed(store.DayKey("2024-05-02")), want: false},
		"favorites":         {ev: changed(store.KeyFavorites), want: true},
		"recents":           {ev: changed(store.KeyRecent), want: false},
		"pins":              {ev: changed(store.KeyPinned), want: false},
		"unclassified file": {ev: changed("stray"), want: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Relevant(tc.ev, "morning", today); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
