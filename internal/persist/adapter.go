package persist

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/carstack/carcompare/internal/database"
	"github.com/carstack/carcompare/internal/model"
	"github.com/carstack/carcompare/internal/selection"
)

// DefaultSlot is the slot name holding the comparison selection.
const DefaultSlot = "comparison"

// Adapter projects the comparison store into a durable database slot and
// back. Construct with New, call Hydrate once at startup, then Attach to
// enable write-through. Watch is optional and adds cross-process
// reconciliation.
type Adapter struct {
	store  *selection.Store
	db     *database.SlotDB
	slot   string
	logger *slog.Logger
}

// New creates an adapter binding the store to the named slot. An empty slot
// name selects DefaultSlot. The logger must not be nil.
func New(store *selection.Store, db *database.SlotDB, slot string, logger *slog.Logger) *Adapter {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Adapter{
		store:  store,
		db:     db,
		slot:   slot,
		logger: logger,
	}
}

// Hydrate replaces the store's selection with the slot's content. Every
// failure mode (missing slot, read error, malformed payload, malformed
// entries) degrades to the filtered remainder or an empty selection and is
// logged; hydration never fails.
func (a *Adapter) Hydrate(ctx context.Context) {
	payload, ok, err := a.db.ReadSlot(ctx, a.slot)
	if err != nil {
		a.logger.Warn("failed to read selection slot, starting empty", "slot", a.slot, "error", err)
		a.store.Replace(nil)
		return
	}
	if !ok {
		a.store.Replace(nil)
		return
	}
	a.store.Replace(decodeSnapshots(payload, a.logger))
}

// Attach subscribes the adapter to store mutations so that every change is
// written through to the slot. Call after Hydrate; attaching first would
// only echo the hydrated content back into the slot, which is harmless but
// wasteful.
func (a *Adapter) Attach() {
	a.store.Subscribe(func() {
		a.save(context.Background())
	})
}

// save writes the current selection snapshots to the slot. Failures are
// logged and swallowed: persistence errors must never propagate out of a
// store mutation.
func (a *Adapter) save(ctx context.Context) {
	items := a.store.Items()
	payload, err := json.Marshal(items)
	if err != nil {
		a.logger.Warn("failed to encode selection, slot not updated", "error", err)
		return
	}
	if err := a.db.WriteSlot(ctx, a.slot, string(payload)); err != nil {
		a.logger.Warn("failed to write selection slot", "slot", a.slot, "error", err)
	}
}

// reconcile re-reads the slot and, when its identifier list no longer
// matches the store's, replaces the in-memory selection wholesale. This is
// the last-writer-wins rule: the external payload is taken as-is, no merge.
// It reports whether a replacement happened.
func (a *Adapter) reconcile(ctx context.Context) bool {
	payload, ok, err := a.db.ReadSlot(ctx, a.slot)
	if err != nil {
		a.logger.Warn("failed to re-read selection slot", "slot", a.slot, "error", err)
		return false
	}

	var external []*model.Vehicle
	if ok {
		external = decodeSnapshots(payload, a.logger)
	}

	externalIDs := make([]string, len(external))
	for i, v := range external {
		externalIDs[i] = v.ID
	}
	if slices.Equal(externalIDs, a.store.IDs()) {
		return false
	}

	a.logger.Debug("external slot change, replacing selection", "slot", a.slot, "ids", externalIDs)
	a.store.Replace(external)
	return true
}

// decodeSnapshots parses a slot payload into vehicle snapshots. A payload
// that is not a JSON array yields nil; entries that are not well-formed
// vehicles are dropped; the survivors are truncated to the selection
// capacity. Order is preserved.
func decodeSnapshots(payload string, logger *slog.Logger) []*model.Vehicle {
	var snapshots []*model.Vehicle
	if err := json.Unmarshal([]byte(payload), &snapshots); err != nil {
		logger.Warn("selection slot payload is not a vehicle array, discarding", "error", err)
		return nil
	}

	vehicles := make([]*model.Vehicle, 0, selection.MaxItems)
	for _, v := range snapshots {
		if !v.WellFormed() {
			logger.Debug("dropping malformed persisted vehicle", "vehicle", v)
			continue
		}
		if len(vehicles) == selection.MaxItems {
			break
		}
		vehicles = append(vehicles, v)
	}
	return vehicles
}
