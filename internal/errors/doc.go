// Package errors provides typed error values for mentahan.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// # Error Categories
//
//   - Log file errors: ErrLogClosed, ErrMalformedRecord, ErrInvalidLevel
//   - Configuration errors: ErrInvalidSettings
//   - Run errors: ErrInterrupted
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("parsing level %q: %w", name, errors.ErrInvalidLevel)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, merrors.ErrInvalidSettings) {
//	    // Show user-friendly message
//	}
package errors
