package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs comparison tables in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Proper table cell alignment and escaping
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the table as a Markdown document. Best values are bolded,
// rows where the vehicles disagree are marked in a trailing Diff column.
func (w *MarkdownWriter) Write(table *Table) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Vehicle Comparison")
	md.PlainText("")

	header := make([]string, 0, len(table.Headers)+2)
	header = append(header, "Specification")
	for _, h := range table.Headers {
		header = append(header, h.Name)
	}
	header = append(header, "Diff")

	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Values)+2)
		cells = append(cells, row.Label)
		for i, value := range row.Values {
			if row.Best[i] {
				value = "**" + value + "**"
			}
			cells = append(cells, value)
		}
		diff := ""
		if row.Highlight {
			diff = "≠"
		}
		cells = append(cells, diff)
		rows = append(rows, cells)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})

	md.PlainText("")
	md.PlainText(fmt.Sprintf("Bold marks the best value of a field. %q marks a missing value.", MissingPlaceholder))

	return len(md.String()), md.Build()
}
