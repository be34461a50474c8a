package logfile

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	merrors "github.com/denoyey/mentahan/internal/errors"
)

// Level is the severity of a log record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

var levelNames = [...]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelError:   "ERROR",
}

// String returns the upper-case level name written to the log.
func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive and WARN is accepted as an alias for WARNING.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("parsing level %q: %w", name, merrors.ErrInvalidLevel)
}

const (
	// TimeLayout is the timestamp layout at the start of every record.
	TimeLayout = "2006-01-02 15:04:05"

	// DefaultFormat renders "<time> - <LEVEL> - <message>".
	DefaultFormat = "{{.Time}} - {{.Level}} - {{.Message}}"

	fieldSep = " - "
)

// Record is a single log entry.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

// Date is a calendar date in local time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Local().Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// lineFields is the data handed to the format template.
type lineFields struct {
	Time    string
	Level   string
	Message string
}

type formatter struct {
	tmpl *template.Template
}

func newFormatter(format string) (*formatter, error) {
	tmpl, err := template.New("line").Option("missingkey=error").Parse(format)
	if err != nil {
		return nil, fmt.Errorf("parsing line format %q: %w", format, err)
	}
	return &formatter{tmpl: tmpl}, nil
}

func (f *formatter) format(rec Record) (string, error) {
	var b strings.Builder
	err := f.tmpl.Execute(&b, lineFields{
		Time:    rec.Time.Local().Format(TimeLayout),
		Level:   rec.Level.String(),
		Message: rec.Message,
	})
	if err != nil {
		return "", fmt.Errorf("formatting record: %w", err)
	}
	return b.String(), nil
}

// FormatRecord renders rec with the default format, without a trailing newline.
func FormatRecord(rec Record) string {
	return rec.Time.Local().Format(TimeLayout) + fieldSep + rec.Level.String() + fieldSep + rec.Message
}

// ParseLine is the inverse of FormatRecord. The timestamp is read in local time.
func ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")

	stamp, rest, ok := strings.Cut(line, fieldSep)
	if !ok {
		return Record{}, fmt.Errorf("missing timestamp separator: %w", merrors.ErrMalformedRecord)
	}
	t, err := time.ParseInLocation(TimeLayout, stamp, time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("parsing timestamp %q: %w", stamp, merrors.ErrMalformedRecord)
	}

	name, msg, ok := strings.Cut(rest, fieldSep)
	if !ok {
		return Record{}, fmt.Errorf("missing level separator: %w", merrors.ErrMalformedRecord)
	}
	level, err := ParseLevel(name)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", merrors.ErrMalformedRecord, err)
	}

	return Record{Time: t, Level: level, Message: msg}, nil
}

// lineDate reads the date from the text before the first field separator.
func lineDate(line string) (Date, bool) {
	stamp, _, _ := strings.Cut(strings.TrimRight(line, "\r\n"), fieldSep)
	t, err := time.ParseInLocation(TimeLayout, stamp, time.Local)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}
