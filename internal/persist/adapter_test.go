package persist

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/carstack/carcompare/internal/database"
	"github.com/carstack/carcompare/internal/model"
	"github.com/carstack/carcompare/internal/selection"
)

// Valid UUIDs used as vehicle identifiers throughout the tests.
const (
	idA = "550e8400-e29b-41d4-a716-446655440000"
	idB = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	idC = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
	idD = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
	idE = "6ba7b814-9dad-11d1-80b4-00c04fd430c8"
)

// discardLogger returns a logger whose output goes nowhere.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// vehicle builds a minimal well-formed vehicle.
func vehicle(id string) *model.Vehicle {
	return &model.Vehicle{ID: id, Make: "Test", Model: "Car"}
}

// newFixture returns a store, an open database, and an adapter bound to the
// default slot.
func newFixture(t *testing.T) (*selection.Store, *database.SlotDB, *Adapter) {
	t.Helper()
	db, err := database.Open(t.TempDir(), database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := selection.New(discardLogger(), selection.Callbacks{})
	return store, db, New(store, db, "", discardLogger())
}

// TestHydrate tests startup hydration from the slot.
func TestHydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("absent slot hydrates an empty selection", func(t *testing.T) {
		t.Parallel()
		store, _, adapter := newFixture(t)
		adapter.Hydrate(ctx)
		if store.Count() != 0 {
			t.Errorf("got count %d, expected 0", store.Count())
		}
	})

	t.Run("valid snapshot array restores the selection in order", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		payload, _ := json.Marshal([]*model.Vehicle{vehicle(idB), vehicle(idA)})
		if err := db.WriteSlot(ctx, DefaultSlot, string(payload)); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}

		adapter.Hydrate(ctx)
		if got := store.IDs(); !slices.Equal(got, []string{idB, idA}) {
			t.Errorf("got %v, expected [%s %s]", got, idB, idA)
		}
	})

	t.Run("non-array payload degrades to empty without panic", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		if err := db.WriteSlot(ctx, DefaultSlot, `"not an array"`); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}

		adapter.Hydrate(ctx)
		if store.Count() != 0 {
			t.Errorf("got count %d, expected 0", store.Count())
		}
	})

	t.Run("malformed entries are filtered, valid ones kept", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		payload := `[
			{"id":"` + idA + `","make":"Toyota","model":"Camry"},
			{"id":"not-a-uuid","make":"Bad","model":"Entry"},
			{"id":"` + idB + `","make":"Honda"},
			{"id":"` + idC + `","make":"Honda","model":"Accord"}
		]`
		if err := db.WriteSlot(ctx, DefaultSlot, payload); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}

		adapter.Hydrate(ctx)
		if got := store.IDs(); !slices.Equal(got, []string{idA, idC}) {
			t.Errorf("got %v, expected [%s %s]", got, idA, idC)
		}
	})

	t.Run("oversized payload is truncated to capacity", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		payload, _ := json.Marshal([]*model.Vehicle{
			vehicle(idA), vehicle(idB), vehicle(idC), vehicle(idD), vehicle(idE),
		})
		if err := db.WriteSlot(ctx, DefaultSlot, string(payload)); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}

		adapter.Hydrate(ctx)
		if store.Count() != selection.MaxItems {
			t.Errorf("got count %d, expected %d", store.Count(), selection.MaxItems)
		}
	})
}

// TestWriteThrough tests that attached mutations reach the slot.
func TestWriteThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, db, adapter := newFixture(t)
	adapter.Hydrate(ctx)
	adapter.Attach()

	store.Add(vehicle(idA))
	store.Add(vehicle(idB))

	payload, ok, err := db.ReadSlot(ctx, DefaultSlot)
	if err != nil || !ok {
		t.Fatalf("slot read failed: ok=%v err=%v", ok, err)
	}

	var persisted []*model.Vehicle
	if err := json.Unmarshal([]byte(payload), &persisted); err != nil {
		t.Fatalf("persisted payload is not a vehicle array: %v", err)
	}
	if len(persisted) != 2 || persisted[0].ID != idA || persisted[1].ID != idB {
		t.Errorf("persisted %v, expected [%s %s]", persisted, idA, idB)
	}

	t.Run("clear persists an empty array", func(t *testing.T) {
		store.Clear()
		payload, ok, err := db.ReadSlot(ctx, DefaultSlot)
		if err != nil || !ok {
			t.Fatalf("slot read failed: ok=%v err=%v", ok, err)
		}
		if payload != "[]" {
			t.Errorf("got %q, expected empty array", payload)
		}
	})
}

// TestReconcile tests the last-writer-wins replacement rule.
func TestReconcile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("external write replaces the selection wholesale", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		store.Add(vehicle(idA))

		payload, _ := json.Marshal([]*model.Vehicle{vehicle(idB), vehicle(idC)})
		if err := db.WriteSlot(ctx, DefaultSlot, string(payload)); err != nil {
			t.Fatalf("external write failed: %v", err)
		}

		if !adapter.reconcile(ctx) {
			t.Fatal("expected reconcile to report a replacement")
		}
		if got := store.IDs(); !slices.Equal(got, []string{idB, idC}) {
			t.Errorf("got %v, expected [%s %s]", got, idB, idC)
		}
	})

	t.Run("matching content is a no-op", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		store.Add(vehicle(idA))
		payload, _ := json.Marshal(store.Items())
		if err := db.WriteSlot(ctx, DefaultSlot, string(payload)); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		notified := false
		store.Subscribe(func() { notified = true })
		if adapter.reconcile(ctx) {
			t.Error("expected no replacement for matching content")
		}
		if notified {
			t.Error("no-op reconcile must not notify subscribers")
		}
	})

	t.Run("externally cleared slot empties the selection", func(t *testing.T) {
		t.Parallel()
		store, db, adapter := newFixture(t)
		store.Add(vehicle(idA))
		if err := db.ClearSlot(ctx, DefaultSlot); err != nil {
			t.Fatalf("clear failed: %v", err)
		}

		if !adapter.reconcile(ctx) {
			t.Fatal("expected reconcile to report a replacement")
		}
		if store.Count() != 0 {
			t.Errorf("got count %d, expected 0", store.Count())
		}
	})
}

// TestWatcherReconcilesExternalWrite tests the end-to-end reconciliation
// path: a second database connection plays the role of another process.
func TestWatcherReconcilesExternalWrite(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	db, err := database.Open(dir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	store := selection.New(discardLogger(), selection.Callbacks{})
	adapter := New(store, db, "", discardLogger())
	adapter.Hydrate(ctx)

	watcher, err := NewWatcher(adapter, discardLogger())
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	if err := watcher.Start(ctx); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	// Another process writes the shared slot.
	other, err := database.Open(dir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open second connection: %v", err)
	}
	defer other.Close()

	payload, _ := json.Marshal([]*model.Vehicle{vehicle(idA)})
	if err := other.WriteSlot(ctx, DefaultSlot, string(payload)); err != nil {
		t.Fatalf("external write failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if slices.Equal(store.IDs(), []string{idA}) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("selection never reconciled, got %v", store.IDs())
}
