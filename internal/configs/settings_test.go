package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	merrors "github.com/denoyey/mentahan/internal/errors"
	"github.com/denoyey/mentahan/internal/logfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "debug = true\n\n[log]\nmax_kb = 64\nlevel = \"warning\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.False(t, settings.Verbose)
	assert.Equal(t, int64(64), settings.Log.MaxKB)
	assert.Equal(t, "warning", settings.Log.Level)
	assert.Equal(t, "mentahan.log", settings.Log.File)
	assert.Equal(t, "log", settings.Log.Dir)
	assert.Equal(t, logfile.DefaultFormat, settings.Log.Format)
}

func TestLoad_EncodedSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	want := Defaults()
	want.Verbose = true
	want.Log.Dir = "logs"
	want.Logo = LogoSettings{Text: "Mentahan", Font: "standard"}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, toml.NewEncoder(f).Encode(want))
	require.NoError(t, f.Close())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[log\nmax_kb = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownKeys(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := filepath.Join(t.TempDir(), FileName)
	content := "[log]\nmax_kb = 64\nmaxkb = 12\n\n[colour]\nname = \"red\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, merrors.ErrInvalidSettings)
	assert.Contains(t, err.Error(), "'log.maxkb'")
	assert.Contains(t, err.Error(), "'colour.name'")
}

func TestValidate_NamesTheKey(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		modify func(*Settings)
		key    string
	}{
		{func(s *Settings) { s.Log.Level = "LOUD" }, "'log.level'"},
		{func(s *Settings) { s.Log.MaxKB = 0 }, "'log.max_kb' must be positive, got 0"},
		{func(s *Settings) { s.Log.File = "" }, "'log.file' must not be empty"},
		{func(s *Settings) { s.Log.Dir = "" }, "'log.dir' must not be empty"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			s := Defaults()
			tc.modify(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"UnknownLevel", func(s *Settings) { s.Log.Level = "LOUD" }},
		{"ZeroMaxKB", func(s *Settings) { s.Log.MaxKB = 0 }},
		{"NegativeMaxKB", func(s *Settings) { s.Log.MaxKB = -5 }},
		{"EmptyFile", func(s *Settings) { s.Log.File = "" }},
		{"EmptyDir", func(s *Settings) { s.Log.Dir = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.modify(s)
			assert.ErrorIs(t, s.Validate(), merrors.ErrInvalidSettings)
		})
	}

	assert.NoError(t, Defaults().Validate())
}

func TestLogOptions(t *testing.T) {
	s := Defaults()
	s.Log.Level = "error"
	s.Log.MaxKB = 10

	opts, err := s.LogOptions()
	require.NoError(t, err)

	assert.Equal(t, "mentahan_logger", opts.Name)
	assert.Equal(t, "mentahan.log", opts.FileName)
	assert.Equal(t, "log", opts.Dir)
	assert.Equal(t, logfile.LevelError, opts.Level)
	assert.Equal(t, int64(10), opts.MaxKB)
	assert.Equal(t, logfile.DefaultFormat, opts.Format)
	assert.NotNil(t, opts.Now)
}
