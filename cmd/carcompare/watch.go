package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carstack/carcompare/internal/persist"
	"github.com/carstack/carcompare/internal/report"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the comparison as other instances change it",
		Long: `Watch keeps running and re-renders the comparison whenever another
carcompare instance changes it.

The database is watched for external writes; changes appear after a short
debounce. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: runWatchCmd,
	}
}

// runWatchCmd executes the watch command.
func runWatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := persist.NewWatcher(s.adapter, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create database watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch database: %w", err)
	}
	defer watcher.Stop()

	// Coalesce store notifications into a single-slot channel so a slow
	// render never blocks the store.
	changes := make(chan struct{}, 1)
	s.store.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	renderWatchState(s)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-changes:
				renderWatchState(s)
			}
		}
	})

	if err := g.Wait(); ctx.Err() == nil {
		return err
	}
	fmt.Fprintln(s.out, "watch stopped")
	return nil
}

// renderWatchState prints the table when the comparison is complete enough,
// the bare selection otherwise.
func renderWatchState(s *session) {
	if !s.store.CanCompare() {
		s.printSelection()
		return
	}
	table := report.BuildTable(s.store.Items(), s.cfg.ReportFields())
	if _, err := report.NewTextWriter(s.out).Write(table); err != nil {
		s.logger.Warn("failed to render comparison", "error", err)
	}
}
