// Package logger provides console diagnostics for the mentahan CLI.
//
// These messages go to the terminal, not to the log file managed by the
// logfile package. Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
// Verbosity is controlled by the settings file:
//
//   - verbose = true: shows info messages
//   - debug = true: shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()  // Shown with verbose or debug
//	Logger.Debugf() // Shown only with debug
//	Logger.Warnf()  // Always shown, on stderr
//	Logger.Errorf() // Always shown, on stderr
//
// # Usage
//
//	log := Logger{Verbose: settings.Verbose, Debug: settings.Debug}
//	log.Debugf("Opened %s", path)
package logger
