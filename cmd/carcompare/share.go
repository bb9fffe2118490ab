package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/shareurl"
)

// NewShareCmd creates the share command.
func NewShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share [url]",
		Short: "Print or inspect a comparison share URL",
		Long: `Share prints the URL encoding the current comparison.

With a URL argument, share inspects it instead: it reports whether the
URL carries a comparison at all and which vehicle identifiers it holds.
Malformed identifiers inside the URL are dropped silently, matching what
import would load.

Examples:
  # Print the URL for the current comparison
  carcompare share

  # Inspect a received URL
  carcompare share "/compare?cmp=550e8400-e29b-41d4-a716-446655440000"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShareCmd,
	}
}

// runShareCmd executes the share command.
func runShareCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return inspectURL(cmd, args[0])
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(s.out, s.sync.ComparisonURL())
	return nil
}

// inspectURL reports what a share URL carries without touching the
// database or the catalog.
func inspectURL(cmd *cobra.Command, rawURL string) error {
	out := cmd.OutOrStdout()
	if !shareurl.HasComparisonInURL(rawURL) {
		fmt.Fprintln(out, "No comparison in URL")
		return nil
	}

	ids := shareurl.DecodeURL(rawURL)
	fmt.Fprintf(out, "Comparison with %d vehicles:\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(out, "  - %s\n", id)
	}
	return nil
}
