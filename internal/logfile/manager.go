package logfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	merrors "github.com/denoyey/mentahan/internal/errors"
)

// Options configures a Manager.
type Options struct {
	// Name identifies the log in diagnostics.
	Name string

	// FileName is the log file name inside Dir.
	FileName string

	// Dir is the directory holding the log file. It is created when absent.
	Dir string

	// Level is the minimum severity written. The zero value admits every record.
	Level Level

	// MaxKB is the size in KiB above which TruncateIfOversized empties the file.
	MaxKB int64

	// Format is a text/template with .Time, .Level and .Message fields.
	Format string

	// Now stamps records written through Info, Warning, Error and Debug.
	Now func() time.Time
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Name:     "default_logger",
		FileName: "logfile.log",
		Dir:      "log",
		Level:    LevelInfo,
		MaxKB:    500,
		Format:   DefaultFormat,
		Now:      time.Now,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Name == "" {
		o.Name = def.Name
	}
	if o.FileName == "" {
		o.FileName = def.FileName
	}
	if o.Dir == "" {
		o.Dir = def.Dir
	}
	if o.MaxKB <= 0 {
		o.MaxKB = def.MaxKB
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Now == nil {
		o.Now = def.Now
	}
	return o
}

// Manager owns a single append-only log file. It separates records from
// different calendar dates with a blank-line marker and empties the file
// once it grows past the configured size.
type Manager struct {
	opts   Options
	path   string
	file   *os.File
	format *formatter

	lastDate    Date
	hasLastDate bool
}

// Open creates the log directory if needed, opens the log file for
// appending and recovers the date of the last record already in it.
func Open(opts Options) (*Manager, error) {
	opts = opts.withDefaults()

	f, err := newFormatter(opts.Format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", opts.Dir, err)
	}

	path := filepath.Join(opts.Dir, opts.FileName)

	last, ok, err := lastRecordDate(path)
	if err != nil {
		return nil, err
	}

	// #nosec G302 -- log file is meant to be readable by the user's tools.
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return &Manager{
		opts:        opts,
		path:        path,
		file:        file,
		format:      f,
		lastDate:    last,
		hasLastDate: ok,
	}, nil
}

// lastRecordDate scans the file from the end for the newest line that
// starts with a timestamp. Lines that do not parse are skipped.
func lastRecordDate(path string) (Date, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Date{}, false, nil
	}
	if err != nil {
		return Date{}, false, fmt.Errorf("failed to read log file %s: %w", path, err)
	}

	lines := bytes.Split(data, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		if d, ok := lineDate(string(lines[i])); ok {
			return d, true, nil
		}
	}
	return Date{}, false, nil
}

// Name returns the configured log name.
func (m *Manager) Name() string {
	return m.opts.Name
}

// Path returns the log file path.
func (m *Manager) Path() string {
	return m.path
}

// MaxBytes returns the truncation threshold in bytes.
func (m *Manager) MaxBytes() int64 {
	return m.opts.MaxKB * 1024
}

// LastDate returns the date of the most recent record, if any.
func (m *Manager) LastDate() (Date, bool) {
	return m.lastDate, m.hasLastDate
}

// Write appends rec to the log. When the record falls on a different date
// than the previous one, two newlines are written first.
func (m *Manager) Write(rec Record) error {
	if m.file == nil {
		return merrors.ErrLogClosed
	}
	if rec.Level < m.opts.Level {
		return nil
	}

	line, err := m.format.format(rec)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	current := DateOf(rec.Time)
	if m.hasLastDate && current != m.lastDate {
		buf.WriteString("\n\n")
	}
	m.lastDate, m.hasLastDate = current, true

	buf.WriteString(line)
	buf.WriteByte('\n')

	if _, err := m.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write log file %s: %w", m.path, err)
	}
	return nil
}

func (m *Manager) log(level Level, msg string) error {
	return m.Write(Record{
		Time:    m.opts.Now().Truncate(time.Second),
		Level:   level,
		Message: msg,
	})
}

// Debug writes a DEBUG record stamped with the current time.
func (m *Manager) Debug(msg string) error { return m.log(LevelDebug, msg) }

// Info writes an INFO record stamped with the current time.
func (m *Manager) Info(msg string) error { return m.log(LevelInfo, msg) }

// Warning writes a WARNING record stamped with the current time.
func (m *Manager) Warning(msg string) error { return m.log(LevelWarning, msg) }

// Error writes an ERROR record stamped with the current time.
func (m *Manager) Error(msg string) error { return m.log(LevelError, msg) }

// TruncateIfOversized empties the log file when it is larger than MaxBytes.
// Truncation releases the handle, so the manager accepts no further writes.
// It reports whether the file was truncated.
func (m *Manager) TruncateIfOversized() (bool, error) {
	info, err := os.Stat(m.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat log file %s: %w", m.path, err)
	}
	if info.Size() <= m.MaxBytes() {
		return false, nil
	}

	if err := m.Close(); err != nil {
		return false, err
	}

	f, err := os.OpenFile(m.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to truncate log file %s: %w", m.path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close truncated log file %s: %w", m.path, err)
	}

	m.lastDate, m.hasLastDate = Date{}, false
	return true, nil
}

// Close releases the log file handle. It is safe to call more than once.
func (m *Manager) Close() error {
	if m.file == nil {
		return nil
	}
	f := m.file
	m.file = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file %s: %w", m.path, err)
	}
	return nil
}
