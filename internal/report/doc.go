// Package report turns the selected vehicles into printable comparison
// tables and writes them in several formats.
//
// The table builder produces plain data: one row per compared field with a
// human label, one formatted value per vehicle, a row-level highlight flag
// (the vehicles disagree on this field), and per-cell best markers for
// numeric fields with a defined polarity. Renderers consume that data
// without reinterpreting it, so the interactive view and the exported
// report always agree on what differs and what wins.
//
// Design decision: We separate the builder from the writers so new output
// formats can be added without touching the comparison semantics. Writers
// implement the Writer interface, allowing them to be used interchangeably
// and composed for multi-format output.
package report
