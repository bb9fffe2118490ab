// Package selection implements the comparison store: the single owner of
// the ordered, duplicate-free, capacity-bounded set of vehicles currently
// being compared.
//
// The store is the only place allowed to mutate the selection. The durable
// database slot and the share URL are projections of it, maintained by the
// persist and shareurl packages through the store's subscriber mechanism;
// they become sources of truth only at hydration time.
//
// Design decision: The store is an explicitly constructed instance injected
// into its consumers, not a package-level singleton. One instance exists
// per process, but the lifecycle is visible: construct once, hydrate once,
// pass by reference. A mutex guards the item slice because the persistence
// watcher reconciles external changes from its own goroutine; every
// mutation still completes synchronously before the call returns.
package selection
