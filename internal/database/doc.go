// Package database provides SQLite-based storage for the durable
// comparison slot.
//
// The SlotDB stores one JSON payload per named slot. The comparison
// selection lives in a single slot as an array of full vehicle snapshots;
// other processes sharing the database file see each other's writes, which
// is what the persist package's reconciliation watcher builds on.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a
// plain JSON file because:
//  1. Writes are atomic - a reader never observes a half-written payload
//  2. CGO-free implementation allows easy cross-compilation
//  3. WAL mode gives concurrent readers while one process writes
//  4. The database is still a single file under the XDG data dir
package database
