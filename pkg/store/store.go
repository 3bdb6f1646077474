// Package store provides persistence for named layout snapshots.
//
// A snapshot freezes one arranged layout together with the environment it
// was computed for, so a preview deployment can serve historical layouts
// and diff arrangements across manifest revisions. Backends:
//   - memory: in-memory storage for development and testing
//   - mongo: MongoDB-backed storage for shared deployments
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gridflow/pkg/layout"
)

// Snapshot is one persisted layout arrangement.
type Snapshot struct {
	ID           string        `json:"id" bson:"_id"`
	ManifestHash string        `json:"manifest_hash" bson:"manifest_hash"`
	Layout       layout.Layout `json:"layout" bson:"layout"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
}

// NewSnapshot creates a snapshot with a fresh ID and timestamp.
func NewSnapshot(manifestHash string, l layout.Layout) *Snapshot {
	return &Snapshot{
		ID:           uuid.NewString(),
		ManifestHash: manifestHash,
		Layout:       l,
		CreatedAt:    time.Now().UTC(),
	}
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Get retrieves a snapshot by ID.
	// Returns an error with code SNAPSHOT_NOT_FOUND when absent.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Put stores a snapshot.
	Put(ctx context.Context, snap *Snapshot) error

	// List returns snapshots for one manifest hash, newest first.
	// An empty hash lists every snapshot.
	List(ctx context.Context, manifestHash string) ([]*Snapshot, error)

	// Delete removes a snapshot. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
