// Package ui styles console text by what it is.
//
//	ui.Notice.Sprint("Process interrupted by user.") // run-ending notices
//	ui.Path.Sprint("log/mentahan.log")               // file paths
//	ui.Warning.Sprintf("%d KiB", 500)                // limits worth acting on
//	ui.Highlight.Sprint("log.max_kb")                // settings keys
//
// Color is dropped when NO_COLOR is set or fatih/color detects a terminal
// that cannot show it. Highlight then falls back to 'single quotes'; the
// others print the text unchanged.
package ui
