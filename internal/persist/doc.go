// Package persist keeps the durable database slot in step with the
// in-memory comparison store.
//
// Responsibilities:
//   - Hydration: on startup, restore the selection from the slot. Absent,
//     unparsable, or malformed payloads degrade to an empty selection and
//     are logged, never surfaced.
//   - Write-through: every store mutation writes the full vehicle snapshots
//     back to the slot. Write failures are logged and swallowed; a mutation
//     caller never sees a persistence error.
//   - Reconciliation: a file watcher observes the database file for writes
//     made by other processes and replaces the in-memory selection
//     wholesale with the slot's new content. Last writer wins; concurrent
//     edits are never merged.
//
// Design decision: Cross-process change detection uses fsnotify on the
// database file rather than polling. The watcher debounces bursts (SQLite
// touches the main file and its WAL journal per commit) and then compares
// the slot's identifier list against the store's; self-inflicted events
// reduce to a no-op because the lists already match.
package persist
