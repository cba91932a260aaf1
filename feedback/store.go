// Package feedback persists small per-topic values: like/dislike votes and
// cached explanations.
//
// Store is a string key/value contract with three backends: MemoryStore,
// RedisStore and SQLiteStore. Load reports ErrNotFound for a missing key.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNotFound is returned by Load when the key has no value.
var ErrNotFound = errors.New("feedback: not found")

// ErrEmptyKey is returned for a blank key.
var ErrEmptyKey = errors.New("feedback: empty key")

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("feedback: unknown backend")

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Store saves and loads string values by key.
type Store interface {
	Save(ctx context.Context, key, value string) error
	Load(ctx context.Context, key string) (string, error)
	Close() error
}

// Options selects and configures a backend for Open.
type Options struct {
	Backend    string
	RedisAddr  string
	SQLitePath string
}

// Open builds the Store named by opts.Backend; empty means memory.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		s := NewRedisStore(RedisOptions{Addr: opts.RedisAddr})
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func checkKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}

	return key, nil
}

// MemoryStore keeps values in a map. The zero value is not usable; call NewMemoryStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{data: make(map[string]string)} }

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, key, value string) error {
	key, err := checkKey(key)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()

	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, key string) (string, error) {
	key, err := checkKey(key)
	if err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("load %q: %w", key, ErrNotFound)
	}

	return v, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }
