package errors

import "errors"

// Log file errors indicate issues with the managed log file.
var (
	// ErrLogClosed indicates a write was attempted after the log file was closed or truncated.
	ErrLogClosed = errors.New("log file is closed")

	// ErrMalformedRecord indicates a log line does not match the record format.
	ErrMalformedRecord = errors.New("malformed log record")

	// ErrInvalidLevel indicates a severity name is not recognised.
	ErrInvalidLevel = errors.New("invalid log level")
)

// Configuration errors indicate issues with the settings file.
var (
	// ErrInvalidSettings indicates the settings file contains unusable values.
	ErrInvalidSettings = errors.New("settings are invalid")
)

// Run errors describe how a setup run was cut short.
var (
	// ErrInterrupted indicates the user cancelled the run.
	ErrInterrupted = errors.New("process interrupted by user")
)
