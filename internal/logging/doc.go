// Package logging provides logging utilities for forage-snippets.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings.
// Text output goes through a charmbracelet/log handler; --json switches to
// slog's JSON handler:
//
//	logging.Debug("activated clauses", "clauses", plan.Clauses)
//	logging.Warn("ignoring empty config file", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading config %s...", path)
//	logging.UserSuccess("Wrote %s", file)
//	logging.UserWarning("--code is ignored without --runtime-language")
//	logging.UserError("Failed to write snippets: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout (os.Stdout unless replaced)
//   - UserWarning, UserError: Stderr (os.Stderr unless replaced)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
