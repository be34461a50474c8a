package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	merrors "github.com/denoyey/mentahan/internal/errors"
	"github.com/denoyey/mentahan/internal/logfile"
	"github.com/denoyey/mentahan/internal/ui"
)

// FileName is the settings file looked up in the working directory.
const FileName = "mentahan.toml"

type Settings struct {
	Verbose bool         `toml:"verbose"`
	Debug   bool         `toml:"debug"`
	Log     LogSettings  `toml:"log"`
	Logo    LogoSettings `toml:"logo"`
}

type LogSettings struct {
	Name   string `toml:"name"`
	File   string `toml:"file"`
	Dir    string `toml:"dir"`
	Level  string `toml:"level"`
	MaxKB  int64  `toml:"max_kb"`
	Format string `toml:"format"`
}

type LogoSettings struct {
	Text string `toml:"text"`
	Font string `toml:"font"`
}

// Defaults returns the settings used when no settings file exists.
func Defaults() *Settings {
	return &Settings{
		Log: LogSettings{
			Name:   "mentahan_logger",
			File:   "mentahan.log",
			Dir:    "log",
			Level:  "INFO",
			MaxKB:  500,
			Format: logfile.DefaultFormat,
		},
	}
}

// Load reads settings from path on top of the defaults. Keys absent from
// the file keep their default; keys the file has but Settings does not are
// rejected. A missing file is not an error.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	md, err := toml.DecodeFile(path, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = ui.Highlight.Sprint(k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", merrors.ErrInvalidSettings, path, strings.Join(keys, ", "))
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that the settings can configure a log file.
func (s *Settings) Validate() error {
	if _, err := logfile.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %w", merrors.ErrInvalidSettings, ui.Highlight.Sprint("log.level"), err)
	}
	if s.Log.MaxKB <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", merrors.ErrInvalidSettings, ui.Highlight.Sprint("log.max_kb"), s.Log.MaxKB)
	}
	if s.Log.File == "" {
		return fmt.Errorf("%w: %s must not be empty", merrors.ErrInvalidSettings, ui.Highlight.Sprint("log.file"))
	}
	if s.Log.Dir == "" {
		return fmt.Errorf("%w: %s must not be empty", merrors.ErrInvalidSettings, ui.Highlight.Sprint("log.dir"))
	}
	return nil
}

// LogOptions converts the log settings into logfile options.
func (s *Settings) LogOptions() (logfile.Options, error) {
	level, err := logfile.ParseLevel(s.Log.Level)
	if err != nil {
		return logfile.Options{}, fmt.Errorf("%w: log.level: %w", merrors.ErrInvalidSettings, err)
	}

	opts := logfile.DefaultOptions()
	opts.Name = s.Log.Name
	opts.FileName = s.Log.File
	opts.Dir = s.Log.Dir
	opts.Level = level
	opts.MaxKB = s.Log.MaxKB
	opts.Format = s.Log.Format
	return opts, nil
}
