package store

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/gridflow/pkg/errors"
	"github.com/matzehuels/gridflow/pkg/layout"
)

func sampleLayout() layout.Layout {
	return layout.Layout{
		Width:  120,
		Height: 10,
		Sections: []layout.SectionFrames{
			{Name: "featured", Items: []layout.Frame{{Index: 0, Width: 40, Height: 5}}},
		},
	}
}

func TestNewSnapshot(t *testing.T) {
	s1 := NewSnapshot("hash1", sampleLayout())
	s2 := NewSnapshot("hash1", sampleLayout())

	if s1.ID == "" || s1.ID == s2.ID {
		t.Errorf("snapshot IDs should be unique and non-empty: %q, %q", s1.ID, s2.ID)
	}
	if s1.CreatedAt.IsZero() {
		t.Error("snapshot should carry a timestamp")
	}
	if s1.ManifestHash != "hash1" {
		t.Errorf("manifest hash = %q, want hash1", s1.ManifestHash)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	snap := NewSnapshot("hash1", sampleLayout())
	if err := s.Put(ctx, snap); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != snap.ID || got.ManifestHash != "hash1" {
		t.Errorf("Get = %+v, want stored snapshot", got)
	}
	if got.Layout.FrameCount() != 1 {
		t.Errorf("frame count = %d, want 1", got.Layout.FrameCount())
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "absent")
	if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("error = %v, want SNAPSHOT_NOT_FOUND", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	old := NewSnapshot("hash1", sampleLayout())
	old.CreatedAt = time.Now().Add(-time.Hour)
	recent := NewSnapshot("hash1", sampleLayout())
	other := NewSnapshot("hash2", sampleLayout())

	for _, snap := range []*Snapshot{old, recent, other} {
		if err := s.Put(ctx, snap); err != nil {
			t.Fatalf("Put error: %v", err)
		}
	}

	// Filtered by manifest hash, newest first
	list, err := s.List(ctx, "hash1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list = %d snapshots, want 2", len(list))
	}
	if list[0].ID != recent.ID {
		t.Error("List should return newest first")
	}

	// Empty hash lists everything
	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("list all = %d snapshots, want 3", len(all))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	snap := NewSnapshot("hash1", sampleLayout())
	if err := s.Put(ctx, snap); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := s.Delete(ctx, snap.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, snap.ID); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("error after delete = %v, want SNAPSHOT_NOT_FOUND", err)
	}

	// Deleting an absent ID is not an error
	if err := s.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete absent error: %v", err)
	}
}
