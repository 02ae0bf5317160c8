package store

import (
	"context"
	"errors"
	"sync"
)

// KV is the storage contract the journal and profile stores need: whole
// values under a handful of fixed keys.
type KV interface {
	// Get returns the value stored under key. A missing key is not an error.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
}

// Persistence is a KV that can report external changes and release resources.
type Persistence interface {
	KV
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// ErrEmptyKey is returned when a caller uses a blank key.
var ErrEmptyKey = errors.New("store: key required")

// Memory is an in-process KV. It backs tests and ephemeral sessions.
type Memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers []chan Event
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = cp
	for _, ch := range m.watchers {
		select {
		case ch <- Event{Type: EventKeyChanged, Key: key}:
		default:
		}
	}
	return nil
}

// Watch emits an event for every Set until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) Close() error { return nil }
