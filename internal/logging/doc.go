// Package logging provides structured logging for recipefinder.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the application. By default it is completely
// silent so log lines never bleed into the full-screen TUI; setting the
// RECIPEFINDER_LOG_LEVEL environment variable enables console output on
// stderr.
//
// # Log Levels
//
//   - Debug: per-request API details (endpoint, status, duration)
//   - Info: normal operations (search fetches, screen transitions)
//   - Warn: non-fatal issues (retries, degraded responses)
//   - Error: failures surfaced to the user
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Search fetch",
//	    zap.String("query", "pasta"),
//	    zap.Int("offset", 10),
//	)
//
// # Configuration
//
// Initialize logging at startup and flush on exit:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
