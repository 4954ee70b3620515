// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"tableflip.dev/ritual/pkg/store"
)

// ErrInjected is returned by writes to keys registered with FailWrites.
var ErrInjected = errors.New("storetest: injected failure")

// Memory keeps records in a map. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	records map[string][]byte
	failing map[string]bool
	writes  int
}

var _ store.Persistence = (*Memory)(nil)

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string][]byte),
		failing: make(map[string]bool),
	}
}

// FailWrites makes every later Write or Erase of key fail with ErrInjected.
func (m *Memory) FailWrites(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[key] = true
}

// Heal clears all injected failures.
func (m *Memory) Heal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = make(map[string]bool)
}

// Writes counts successful writes and erases.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.records[key]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", key, os.ErrNotExist)
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing[key] {
		return ErrInjected
	}
	m.records[key] = append([]byte(nil), val...)
	m.writes++
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing[key] {
		return ErrInjected
	}
	if _, ok := m.records[key]; !ok {
		return fmt.Errorf("erase %s: %w", key, os.ErrNotExist)
	}
	delete(m.records, key)
	m.writes++
	return nil
}

func (m *Memory) Keys(_ context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Watch never emits; the channel closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
