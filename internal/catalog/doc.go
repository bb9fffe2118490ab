// Package catalog loads the vehicle catalog the CLI resolves identifiers
// against.
//
// The catalog is an external collaborator to the comparison core: it hands
// over fully-formed vehicles and is the only place business data comes
// from. The loader checks structural well-formedness (UUID identifier,
// make, model) and drops anything else; it never validates business data
// such as price plausibility.
package catalog
