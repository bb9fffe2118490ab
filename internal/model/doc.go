// Package model defines the core data structures used throughout carcompare.
//
// This package contains the following main types:
//   - Vehicle: A catalog entity eligible for side-by-side comparison
//   - FieldValue: A tagged value resolved from a vehicle field path
//   - Classification: The result of comparing one field value against its peers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (compare, selection, persist, report) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for the durable
// selection slot and to YAML for the catalog file.
package model
