// Package logfile manages the plain-text log file written by mentahan.
//
// A Manager owns one append-only file for the life of the process. Each
// record is rendered as a single line:
//
//	2024-01-02 15:04:05 - INFO - SystemSetup started successfully.
//
// # Day Separators
//
// When a record falls on a different local calendar date than the record
// before it, two newlines are written first so each day forms its own block.
// The date of the previous record survives restarts: Open scans the existing
// file from the end for the newest line that starts with a timestamp. The
// very first record of an empty file never gets a separator.
//
// # Truncation
//
// TruncateIfOversized empties the file once it is larger than the configured
// threshold (500 KiB by default). The file is either left untouched or reset
// to zero bytes, never cut partway.
//
// # Usage
//
//	opts := logfile.DefaultOptions()
//	opts.FileName = "mentahan.log"
//	m, err := logfile.Open(opts)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	_ = m.Info("SystemSetup started successfully.")
//	_, _ = m.TruncateIfOversized()
package logfile
