package selection

import (
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/carstack/carcompare/internal/model"
)

// discardLogger returns a logger whose output goes nowhere.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// vehicle builds a minimal well-formed vehicle for store tests.
func vehicle(id string) *model.Vehicle {
	return &model.Vehicle{ID: id, Make: "Test", Model: "Car"}
}

// TestStoreAdd tests the add primitive, its capacity bound, and duplicate
// rejection.
func TestStoreAdd(t *testing.T) {
	t.Parallel()

	t.Run("appends and reports success", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		if !s.Add(vehicle("a")) {
			t.Fatal("expected add to succeed on empty store")
		}
		if s.Count() != 1 {
			t.Errorf("got count %d, expected 1", s.Count())
		}
	})

	t.Run("rejects duplicate identifier without capacity callback", func(t *testing.T) {
		t.Parallel()
		capacityFired := false
		s := New(discardLogger(), Callbacks{
			OnCapacityReached: func(*model.Vehicle) { capacityFired = true },
		})
		s.Add(vehicle("a"))
		if s.Add(vehicle("a")) {
			t.Error("expected duplicate add to fail")
		}
		if s.Count() != 1 {
			t.Errorf("got count %d, expected 1", s.Count())
		}
		if capacityFired {
			t.Error("duplicate rejection must not fire the capacity callback")
		}
	})

	t.Run("fifth add fails and fires the capacity callback", func(t *testing.T) {
		t.Parallel()
		var rejected *model.Vehicle
		s := New(discardLogger(), Callbacks{
			OnCapacityReached: func(v *model.Vehicle) { rejected = v },
		})
		for _, id := range []string{"a", "b", "c", "d"} {
			if !s.Add(vehicle(id)) {
				t.Fatalf("expected add of %q to succeed", id)
			}
		}
		if s.Add(vehicle("e")) {
			t.Error("expected add beyond capacity to fail")
		}
		if s.Count() != MaxItems {
			t.Errorf("got count %d, expected %d", s.Count(), MaxItems)
		}
		if rejected == nil || rejected.ID != "e" {
			t.Errorf("capacity callback got %v, expected the rejected vehicle", rejected)
		}
	})

	t.Run("added callback fires only on success", func(t *testing.T) {
		t.Parallel()
		added := 0
		s := New(discardLogger(), Callbacks{
			OnAdded: func(*model.Vehicle) { added++ },
		})
		s.Add(vehicle("a"))
		s.Add(vehicle("a")) // duplicate
		if added != 1 {
			t.Errorf("got %d added callbacks, expected 1", added)
		}
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		s.Add(vehicle("b"))
		s.Add(vehicle("a"))
		s.Add(vehicle("c"))
		if got := s.IDs(); !slices.Equal(got, []string{"b", "a", "c"}) {
			t.Errorf("got order %v, expected [b a c]", got)
		}
	})
}

// TestStoreRemove tests removal and its silence on absent identifiers.
func TestStoreRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes present vehicle and fires callback", func(t *testing.T) {
		t.Parallel()
		var removed *model.Vehicle
		s := New(discardLogger(), Callbacks{
			OnRemoved: func(v *model.Vehicle) { removed = v },
		})
		s.Add(vehicle("a"))
		if !s.Remove("a") {
			t.Fatal("expected remove to report true")
		}
		if s.Contains("a") {
			t.Error("expected vehicle to be gone")
		}
		if removed == nil || removed.ID != "a" {
			t.Error("expected removed callback with the vehicle")
		}
	})

	t.Run("absent identifier is silently inert", func(t *testing.T) {
		t.Parallel()
		fired := false
		s := New(discardLogger(), Callbacks{
			OnRemoved: func(*model.Vehicle) { fired = true },
		})
		if s.Remove("ghost") {
			t.Error("expected remove of absent id to report false")
		}
		if fired {
			t.Error("removed callback must not fire for absent ids")
		}
	})
}

// TestStoreClear tests that clearing notifies only when something changed.
func TestStoreClear(t *testing.T) {
	t.Parallel()

	t.Run("clears non-empty selection and fires callback", func(t *testing.T) {
		t.Parallel()
		cleared := false
		s := New(discardLogger(), Callbacks{OnCleared: func() { cleared = true }})
		s.Add(vehicle("a"))
		s.Clear()
		if s.Count() != 0 {
			t.Errorf("got count %d, expected 0", s.Count())
		}
		if !cleared {
			t.Error("expected cleared callback")
		}
	})

	t.Run("clearing an empty selection is silent", func(t *testing.T) {
		t.Parallel()
		cleared := false
		notified := false
		s := New(discardLogger(), Callbacks{OnCleared: func() { cleared = true }})
		s.Subscribe(func() { notified = true })
		s.Clear()
		if cleared || notified {
			t.Error("expected no callbacks for a no-op clear")
		}
	})
}

// TestStoreToggle tests that a double toggle restores the prior state.
func TestStoreToggle(t *testing.T) {
	t.Parallel()

	t.Run("toggle adds when absent", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		if !s.Toggle(vehicle("a")) {
			t.Error("expected toggle to report selected")
		}
		if !s.Contains("a") {
			t.Error("expected vehicle to be selected")
		}
	})

	t.Run("toggle removes when present", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		s.Add(vehicle("a"))
		if s.Toggle(vehicle("a")) {
			t.Error("expected toggle to report deselected")
		}
		if s.Contains("a") {
			t.Error("expected vehicle to be deselected")
		}
	})

	t.Run("double toggle round-trips the selection exactly", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		s.Add(vehicle("a"))
		s.Add(vehicle("b"))
		before := s.IDs()

		s.Toggle(vehicle("c"))
		s.Toggle(vehicle("c"))

		if got := s.IDs(); !slices.Equal(got, before) {
			t.Errorf("got %v, expected %v", got, before)
		}
	})
}

// TestStoreQueries tests the pure query surface.
func TestStoreQueries(t *testing.T) {
	t.Parallel()

	s := New(discardLogger(), Callbacks{})

	t.Run("empty store is below the comparison floor", func(t *testing.T) {
		if s.CanCompare() {
			t.Error("expected empty selection to not be comparable")
		}
		if !s.CanAddMore() {
			t.Error("expected empty selection to accept more")
		}
	})

	s.Add(vehicle("a"))
	s.Add(vehicle("b"))

	t.Run("two vehicles reach the comparison floor", func(t *testing.T) {
		if !s.CanCompare() {
			t.Error("expected two vehicles to be comparable")
		}
	})

	s.Add(vehicle("c"))
	s.Add(vehicle("d"))

	t.Run("full store rejects more", func(t *testing.T) {
		if s.CanAddMore() {
			t.Error("expected full selection to reject more")
		}
	})

	t.Run("items returns a copy", func(t *testing.T) {
		items := s.Items()
		items[0] = vehicle("mutated")
		if s.IDs()[0] != "a" {
			t.Error("mutating the returned slice must not affect the store")
		}
	})
}

// TestStoreReplace tests wholesale replacement used by hydration and
// external reconciliation.
func TestStoreReplace(t *testing.T) {
	t.Parallel()

	t.Run("replaces wholesale and notifies subscribers", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		s.Add(vehicle("old"))
		notified := 0
		s.Subscribe(func() { notified++ })

		s.Replace([]*model.Vehicle{vehicle("x"), vehicle("y")})

		if got := s.IDs(); !slices.Equal(got, []string{"x", "y"}) {
			t.Errorf("got %v, expected [x y]", got)
		}
		if notified != 1 {
			t.Errorf("got %d notifications, expected 1", notified)
		}
	})

	t.Run("deduplicates and truncates to capacity", func(t *testing.T) {
		t.Parallel()
		s := New(discardLogger(), Callbacks{})
		s.Replace([]*model.Vehicle{
			vehicle("a"), vehicle("a"), vehicle("b"), vehicle("c"),
			vehicle("d"), vehicle("e"),
		})
		if got := s.IDs(); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
			t.Errorf("got %v, expected [a b c d]", got)
		}
	})

	t.Run("per-item callbacks do not fire on replace", func(t *testing.T) {
		t.Parallel()
		fired := false
		s := New(discardLogger(), Callbacks{
			OnAdded:   func(*model.Vehicle) { fired = true },
			OnRemoved: func(*model.Vehicle) { fired = true },
		})
		s.Add(vehicle("a"))
		fired = false
		s.Replace([]*model.Vehicle{vehicle("b")})
		if fired {
			t.Error("replace is a projection reload, not a user mutation")
		}
	})
}

// TestStoreSubscriberSeesPostMutationState tests the synchronous mutation
// guarantee: a subscriber reading back sees the new state.
func TestStoreSubscriberSeesPostMutationState(t *testing.T) {
	t.Parallel()

	s := New(discardLogger(), Callbacks{})
	var seen int
	s.Subscribe(func() { seen = s.Count() })

	s.Add(vehicle("a"))
	if seen != 1 {
		t.Errorf("subscriber saw count %d, expected 1", seen)
	}

	s.Add(vehicle("b"))
	if seen != 2 {
		t.Errorf("subscriber saw count %d, expected 2", seen)
	}
}
