// Package log provides the application logger, built on top of the
// standard slog package.
//
// Logging in carcompare is diagnostic, not user output: comparison tables
// and share URLs go to stdout, while the logger writes to stderr. Recovered
// failures such as an unreadable database or a malformed saved comparison
// are logged at Warn and the application degrades gracefully, so the
// default level is Warn and verbose mode lowers it to Debug.
//
// # Usage
//
//	logger := log.New(os.Stderr, cfg.Verbose)
//	logger.Warn("failed to restore comparison", "slot", slot, "error", err)
package log
