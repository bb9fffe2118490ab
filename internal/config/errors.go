package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptySlot is returned when the persistence slot name is empty.
	// Every comparison lives in a named slot; an empty name has nowhere
	// to load from or save to.
	ErrEmptySlot = errors.New("empty slot name: provide a slot via --slot")

	// ErrInvalidBatchWindow is returned when the URL batch window is
	// negative. Use 0 to publish immediately on every change.
	ErrInvalidBatchWindow = errors.New("invalid batch window: must be non-negative")
)
