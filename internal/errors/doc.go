// Package errors provides typed errors with exit codes for forage-snippets.
//
// # Error Types
//
// ForageError is the base error type that wraps an error with an exit code:
//
//	type ForageError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitConfigError     = 2  // Config file unreadable, undecodable or invalid
//	ExitValidationError = 3  // Bad flag or argument values
//	ExitOutputError     = 4  // Writing snippets failed
//	ExitPreviewError    = 5  // Terminal preview failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConfigError("failed to load config", err)
//	errors.InvalidFlag("lang", "cobol", "want python, typescript or all")
//	errors.OutputError("write", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
