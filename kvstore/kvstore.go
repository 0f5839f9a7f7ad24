// Package kvstore defines the durable key-value contract the ledger
// persists through, and provides an in-memory and a SQLite-backed
// implementation. Any store satisfying the interface works: the ledger
// reads each entry once at load time and rewrites entries in full on save.
package kvstore

import (
	"context"
	"sync"
)

// Store is a durable string key-value store.
type Store interface {
	// Get returns the value stored under key, and whether it exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Mem is an in-memory Store for tests and ephemeral use.
// The zero value is ready to use.
type Mem struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem { return &Mem{} }

func (s *Mem) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Mem) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]string)
	}
	s.m[key] = value
	return nil
}

func (s *Mem) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

var _ Store = (*Mem)(nil)
