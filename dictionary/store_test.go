package dictionary

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "community.db")
	s, err := OpenStore(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, path
}

func TestStore_AddSnapshot(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "Eiffel Tower", "EIF-TOW"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(ctx, "Sydney Opera House", "SYD-OPE-HOU"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// Resubmission replaces the code
	if err := s.Add(ctx, "Eiffel Tower", "TOU-EIF"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	d, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", d.Len())
	}
	if code, _ := d.Lookup("Eiffel Tower"); code != "TOU-EIF" {
		t.Errorf("expected TOU-EIF, got %q", code)
	}
}

func TestStore_AddInvalid(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "Eiffel Tower", "eiffel"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got: %v", err)
	}
	if err := s.Add(ctx, "  ", "ABC"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got: %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "Eiffel Tower", "EIF-TOW"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Remove(ctx, "Eiffel Tower"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(ctx, "Eiffel Tower"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got: %v", err)
	}
}

func TestStore_ImportAndLoad(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()

	want := landmarkDictionary(t)
	if err := s.Import(ctx, want); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// The database file is itself a loadable dictionary
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Digest() != want.Digest() {
		t.Error("digest mismatch between imported and loaded dictionary")
	}
}
