package selection

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/carstack/carcompare/internal/model"
)

// Capacity bounds for the selection.
const (
	// MaxItems is the hard capacity of the comparison set. Adding beyond it
	// fails with a boolean result and the capacity callback, never an error.
	MaxItems = 4

	// MinItems is the soft floor below which a comparison is not yet
	// actionable. A selection below the floor is valid, just not comparable.
	MinItems = 2
)

// Callbacks are optional notification hooks fired by store mutations.
// Each hook fires only when its condition actually occurred: OnAdded only
// on a successful append, OnRemoved only when something was removed,
// OnCleared only when the set was non-empty, OnCapacityReached only when an
// add was attempted at full capacity. Nil hooks are skipped.
type Callbacks struct {
	// OnAdded fires after a vehicle was appended to the selection.
	OnAdded func(v *model.Vehicle)

	// OnRemoved fires after a vehicle was removed from the selection.
	OnRemoved func(v *model.Vehicle)

	// OnCleared fires after a non-empty selection was emptied.
	OnCleared func()

	// OnCapacityReached fires when Add is attempted while the selection is
	// already at MaxItems. The rejected vehicle is passed so the UI can name
	// it in a "maximum reached" affordance.
	OnCapacityReached func(rejected *model.Vehicle)
}

// Store owns the ordered selection of vehicles under comparison.
// The zero value is not usable; construct with New.
type Store struct {
	mu          sync.Mutex
	items       []*model.Vehicle
	callbacks   Callbacks
	subscribers []func()
	logger      *slog.Logger
}

// New creates an empty store. The logger must not be nil; pass a discard
// logger when output is unwanted. Callbacks hooks may be left nil.
func New(logger *slog.Logger, callbacks Callbacks) *Store {
	return &Store{
		callbacks: callbacks,
		logger:    logger,
	}
}

// Subscribe registers a function invoked after every effective mutation
// (add, remove, clear, replace). Subscribers run synchronously on the
// mutating goroutine, after the store state has been updated, so a
// subscriber reading back through the store sees post-mutation state.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Add appends the vehicle to the selection. It returns false without
// mutating when the selection is full or already contains the vehicle's
// identifier. Duplicate rejection does not fire the capacity callback.
func (s *Store) Add(v *model.Vehicle) bool {
	if v == nil {
		return false
	}

	s.mu.Lock()
	if len(s.items) >= MaxItems {
		s.mu.Unlock()
		s.logger.Debug("selection at capacity, add rejected", "id", v.ID, "max", MaxItems)
		if s.callbacks.OnCapacityReached != nil {
			s.callbacks.OnCapacityReached(v)
		}
		return false
	}
	if s.indexOf(v.ID) >= 0 {
		s.mu.Unlock()
		s.logger.Debug("duplicate add rejected", "id", v.ID)
		return false
	}
	s.items = append(s.items, v)
	s.mu.Unlock()

	if s.callbacks.OnAdded != nil {
		s.callbacks.OnAdded(v)
	}
	s.notify()
	return true
}

// Remove deletes the vehicle with the given identifier and reports whether
// anything was removed. Removing an absent identifier is silently inert.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.mu.Unlock()

	if s.callbacks.OnRemoved != nil {
		s.callbacks.OnRemoved(removed)
	}
	s.notify()
	return true
}

// Clear empties the selection. The cleared callback and subscriber
// notifications fire only when the selection was non-empty.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = nil
	s.mu.Unlock()

	if s.callbacks.OnCleared != nil {
		s.callbacks.OnCleared()
	}
	s.notify()
}

// Toggle removes the vehicle when present, otherwise attempts an add.
// It reports whether the vehicle is selected after the call.
func (s *Store) Toggle(v *model.Vehicle) bool {
	if v == nil {
		return false
	}
	if s.Remove(v.ID) {
		return false
	}
	return s.Add(v)
}

// Replace swaps the whole selection for the given items, deduplicating by
// identifier and truncating to MaxItems. It is the hydration and
// reconciliation entry point: per-item callbacks do not fire (the change is
// a projection reload, not a user mutation), but subscribers are notified.
func (s *Store) Replace(items []*model.Vehicle) {
	next := make([]*model.Vehicle, 0, MaxItems)
	seen := make(map[string]bool, MaxItems)
	for _, v := range items {
		if v == nil || seen[v.ID] {
			continue
		}
		if len(next) == MaxItems {
			break
		}
		seen[v.ID] = true
		next = append(next, v)
	}

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
	s.notify()
}

// Contains reports whether the identifier is in the selection.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Count returns the number of selected vehicles.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CanAddMore reports whether the selection is below MaxItems.
func (s *Store) CanAddMore() bool {
	return s.Count() < MaxItems
}

// CanCompare reports whether the selection holds at least MinItems.
func (s *Store) CanCompare() bool {
	return s.Count() >= MinItems
}

// Items returns a copy of the selection in insertion order, which is also
// the display order.
func (s *Store) Items() []*model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// IDs returns the selected identifiers in insertion order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.items))
	for i, v := range s.items {
		ids[i] = v.ID
	}
	return ids
}

// indexOf returns the position of the identifier, or -1. Callers hold mu.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(v *model.Vehicle) bool {
		return v.ID == id
	})
}

// notify invokes all subscribers. Runs unlocked so subscribers can query
// the store; the subscriber slice itself is copied under the lock.
func (s *Store) notify() {
	s.mu.Lock()
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
