package report

import (
	"fmt"
	"io"
	"strings"
)

// TextWriter outputs human-readable comparison tables for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because it works in all terminals and pipes
// cleanly to files. Best values carry a "*" suffix, differing rows are
// prefixed with "!".
type TextWriter struct {
	baseWriter

	// diffOnly restricts output to rows where the vehicles disagree.
	diffOnly bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithDiffOnly restricts output to rows with differing values.
func WithDiffOnly(diffOnly bool) TextWriterOption {
	return func(w *TextWriter) {
		w.diffOnly = diffOnly
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the table as aligned text columns.
func (w *TextWriter) Write(table *Table) (int, error) {
	var sb strings.Builder

	labelWidth := len("Specification")
	for _, row := range table.Rows {
		if len(row.Label)+2 > labelWidth {
			labelWidth = len(row.Label) + 2
		}
	}

	colWidths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		colWidths[i] = len(h.Name)
		for _, row := range table.Rows {
			// One extra for the best marker suffix.
			if n := len(row.Values[i]) + 1; n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	// Header line
	fmt.Fprintf(&sb, "  %-*s", labelWidth, "Specification")
	for i, h := range table.Headers {
		fmt.Fprintf(&sb, "  %-*s", colWidths[i], h.Name)
	}
	sb.WriteString("\n")

	total := labelWidth + 2
	for _, cw := range colWidths {
		total += cw + 2
	}
	sb.WriteString("  " + strings.Repeat("-", total) + "\n")

	for _, row := range table.Rows {
		if w.diffOnly && !row.Highlight {
			continue
		}
		marker := " "
		if row.Highlight {
			marker = "!"
		}
		fmt.Fprintf(&sb, "%s %-*s", marker, labelWidth, row.Label)
		for i, value := range row.Values {
			if row.Best[i] {
				value += "*"
			}
			fmt.Fprintf(&sb, "  %-*s", colWidths[i], value)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n  * best value   ! values differ\n")

	return w.output.Write([]byte(sb.String()))
}
