package report

import "io"

// Writer defines the interface for comparison table output.
// Implementations render the same table data in different formats.
//
// Design decision: We use an interface so the CLI can write to terminal,
// file, or both with the same API, and so the layout side never reaches
// back into comparison semantics: a writer must render the highlight and
// best flags it is given, not recompute them.
type Writer interface {
	// Write renders the table to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(table *Table) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the table to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(table *Table) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(table)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for table writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
