package utils

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/denoyey/mentahan/internal/errors"
)

func newTestClearer(goos string, out *bytes.Buffer, run func(*exec.Cmd) error) *Clearer {
	return &Clearer{
		goos:        goos,
		stdout:      out,
		stderr:      out,
		interactive: func() bool { return true },
		run:         run,
	}
}

func TestClearerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "clear", nil},
		{"darwin", "clear", nil},
		{"windows", "cmd", []string{"/c", "cls"}},
	}

	for _, tc := range tests {
		t.Run(tc.goos, func(t *testing.T) {
			c := newTestClearer(tc.goos, &bytes.Buffer{}, nil)
			name, args := c.Command()
			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestClear_RunsPlatformCommand(t *testing.T) {
	var out bytes.Buffer
	var ran *exec.Cmd
	c := newTestClearer("windows", &out, func(cmd *exec.Cmd) error {
		ran = cmd
		return nil
	})

	require.NoError(t, c.Clear())
	require.NotNil(t, ran)
	assert.Equal(t, "cmd", filepath.Base(ran.Args[0]))
	assert.Equal(t, []string{"cmd", "/c", "cls"}, ran.Args)
	assert.Same(t, &out, ran.Stdout)
	assert.Empty(t, out.String())
}

func TestClear_FallsBackToANSI(t *testing.T) {
	var out bytes.Buffer
	c := newTestClearer("linux", &out, func(*exec.Cmd) error {
		return errors.New("executable file not found")
	})

	err := c.Clear()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running clear")
	assert.Equal(t, clearSequence, out.String())
}

func TestClear_CommandKilledByInterrupt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell to deliver SIGINT")
	}
	if signal.Ignored(os.Interrupt) {
		t.Skip("SIGINT is ignored by this process and its children")
	}

	var out bytes.Buffer
	c := newTestClearer("linux", &out, func(*exec.Cmd) error {
		return exec.Command("sh", "-c", "kill -INT $$").Run()
	})

	err := c.Clear()
	assert.ErrorIs(t, err, merrors.ErrInterrupted)
	assert.Empty(t, out.String(), "no fallback sequence after an interrupt")
}

func TestClear_CommandExitStatusIsNotAnInterrupt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	var out bytes.Buffer
	c := newTestClearer("linux", &out, func(*exec.Cmd) error {
		return exec.Command("sh", "-c", "exit 2").Run()
	})

	err := c.Clear()
	require.Error(t, err)
	assert.NotErrorIs(t, err, merrors.ErrInterrupted)
	assert.Equal(t, clearSequence, out.String())
}

func TestClear_SkipsWhenNotInteractive(t *testing.T) {
	var out bytes.Buffer
	called := false
	c := newTestClearer("linux", &out, func(*exec.Cmd) error {
		called = true
		return nil
	})
	c.interactive = func() bool { return false }

	require.NoError(t, c.Clear())
	assert.False(t, called)
	assert.Empty(t, out.String())
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
