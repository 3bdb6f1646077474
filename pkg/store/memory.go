package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/gridflow/pkg/errors"
)

// MemoryStore is an in-memory snapshot store for development and testing.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

// Get retrieves a snapshot by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snaps[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeSnapshotNotFound, "snapshot not found: %s", id)
	}
	return snap, nil
}

// Put stores a snapshot.
func (s *MemoryStore) Put(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snaps[snap.ID] = snap
	return nil
}

// List returns snapshots for one manifest hash, newest first.
func (s *MemoryStore) List(_ context.Context, manifestHash string) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Snapshot
	for _, snap := range s.snaps {
		if manifestHash == "" || snap.ManifestHash == manifestHash {
			out = append(out, snap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a snapshot.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snaps, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(_ context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
