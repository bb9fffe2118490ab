// Package compare implements the field difference classifier.
//
// Given a field path and the currently selected vehicles, the classifier
// assigns each vehicle a Classification (same, higher, lower, different)
// relative to its peers, and marks the advantageous extreme for numeric
// fields with a defined polarity.
//
// The package is pure: it has no dependencies beyond the model package and
// performs no I/O. Both the interactive comparison view and the exported
// report derive their highlighting from it, so its rules are the single
// source of truth for "which value wins".
//
// Design decision: Field polarity is an explicit enumerated map keyed by
// exact field path rather than substring matching on path fragments.
// Substring matching would silently flip any future path that happened to
// contain "price"; with the map, unanticipated paths default to
// higher-is-better and adding a lower-is-better field is an explicit edit.
package compare
