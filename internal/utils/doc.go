// Package utils provides small operating-system helpers for mentahan.
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether a file is attached to a terminal
//   - Clearer: clears the screen with the platform's own command
//     ("clear", or "cmd /c cls" on Windows), falling back to the ANSI
//     clear sequence when the command cannot run
package utils
