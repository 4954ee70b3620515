package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventRecordChanged indicates the record named by Event.Key was written
	// or erased.
	EventRecordChanged EventType = iota

	// EventInvalidated signals a change that could not be pinned to a single
	// record; callers should reload everything they show.
	EventInvalidated
)

// Family groups record keys by the collection they belong to.
type Family int

const (
	FamilyUnknown Family = iota
	// FamilyOverlay covers overrides, custom items, tombstones and custom
	// categories.
	FamilyOverlay
	FamilyOrder
	FamilyDay
	FamilyTargets
	FamilyLedger
)

// FamilyOf classifies a record key.
func FamilyOf(key string) Family {
	switch {
	case strings.HasPrefix(key, "overlay/"):
		return FamilyOverlay
	case strings.HasPrefix(key, PrefixOrder):
		return FamilyOrder
	case strings.HasPrefix(key, PrefixDay):
		return FamilyDay
	case key == KeyTargets:
		return FamilyTargets
	case strings.HasPrefix(key, "ledger/"):
		return FamilyLedger
	}
	return FamilyUnknown
}

// Event is emitted by Persistence.Watch when underlying storage changes.
// Family is FamilyUnknown for invalidations.
type Event struct {
	Type   EventType
	Key    string
	Family Family
}

func recordChanged(key string) Event {
	return Event{Type: EventRecordChanged, Key: key, Family: FamilyOf(key)}
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("store: watcher close", "error", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("store: watcher error", "error", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								slog.Warn("store: watch", "dir", absDir, "error", err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventInvalidated}, send)
						continue
					}
				}

				key := p.keyForPath(evt.Name)
				if key == "" {
					throttle.Enqueue(Event{Type: EventInvalidated}, send)
					continue
				}

				throttle.Enqueue(recordChanged(key), send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// keyForPath maps a file below the base path back to its record key.
func (p *persistence) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

// eventThrottle coalesces a burst of notifications. Each changed key is sent
// once, in key order. An invalidation in the burst replaces every keyed event
// since consumers reload everything anyway.
type eventThrottle struct {
	mu          sync.Mutex
	timer       *time.Timer
	keys        map[string]struct{}
	invalidated bool
	delay       time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay: delay,
		keys:  make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ev.Type == EventInvalidated || ev.Key == "" {
		t.invalidated = true
	} else {
		t.keys[ev.Key] = struct{}{}
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			for _, ev := range t.drain() {
				send(ev)
			}
		})
	}
}

// drain empties the pending burst and returns the events to send.
func (t *eventThrottle) drain() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	keys := t.keys
	invalidated := t.invalidated
	t.keys = make(map[string]struct{})
	t.invalidated = false

	if invalidated {
		return []Event{{Type: EventInvalidated}}
	}
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)
	out := make([]Event, len(sorted))
	for i, key := range sorted {
		out[i] = recordChanged(key)
	}
	return out
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
