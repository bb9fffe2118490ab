package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/config"
	"github.com/carstack/carcompare/internal/report"
	"github.com/carstack/carcompare/internal/selection"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the comparison as a table",
		Long: `Report renders the current comparison as a side-by-side table.

Each row is one specification, each column one vehicle. Rows where the
vehicles disagree are marked, and for numeric specifications the best
value is highlighted. Price, MSRP, fuel consumption, and curb weight
count lower values as better; everything else counts higher as better.

The specification list can be customized in the .carcompare config file.

Examples:
  # Human-readable text table
  carcompare report

  # Only the rows where the vehicles differ
  carcompare report --diff-only

  # Markdown, also written to a file
  carcompare report --markdown -o comparison.md

  # JSON for further processing
  carcompare report --json`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().BoolP("diff-only", "d", false,
		"Only show rows where the vehicles differ (text format)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.DiffOnly, err = cmd.Flags().GetBool("diff-only")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.store.CanCompare() {
		return fmt.Errorf("comparison needs at least %d vehicles, have %d (use \"carcompare add\")",
			selection.MinItems, s.store.Count())
	}

	table := report.BuildTable(s.store.Items(), cfg.ReportFields())

	writers := []report.Writer{newReportWriter(s.out, cfg)}
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		writers = append(writers, newReportWriter(f, cfg))
	}

	if _, err := report.NewMultiWriter(writers...).Write(table); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter picks the writer for the configured format.
func newReportWriter(w io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewTextWriter(w, report.WithDiffOnly(cfg.DiffOnly))
	}
}
