package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"golang.org/x/term"

	merrors "github.com/denoyey/mentahan/internal/errors"
)

// clearSequence clears the screen and moves the cursor to top-left.
const clearSequence = "\033[2J\033[H"

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Clearer clears the terminal with the host platform's own command.
type Clearer struct {
	goos   string
	stdout io.Writer
	stderr io.Writer

	// interactive reports whether there is a screen worth clearing.
	interactive func() bool
	run         func(*exec.Cmd) error
}

// NewClearer detects the platform once and targets the process stdout.
func NewClearer() *Clearer {
	return &Clearer{
		goos:        runtime.GOOS,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: func() bool { return IsTerminal(os.Stdout) },
		run:         (*exec.Cmd).Run,
	}
}

// Command returns the clear command for the detected platform.
func (c *Clearer) Command() (string, []string) {
	if c.goos == "windows" {
		return "cmd", []string{"/c", "cls"}
	}
	return "clear", nil
}

// Clear clears the screen. It does nothing when stdout is not a terminal.
// If the platform command fails the ANSI clear sequence is written instead,
// and the command's error is still returned so callers can report it.
// A command killed by SIGINT returns errors.ErrInterrupted without the
// fallback, since the same signal is on its way to this process.
func (c *Clearer) Clear() error {
	if c.interactive != nil && !c.interactive() {
		return nil
	}

	name, args := c.Command()
	cmd := exec.Command(name, args...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	err := c.run(cmd)
	if err == nil {
		return nil
	}
	if killedByInterrupt(err) {
		return fmt.Errorf("running %s: %w", name, merrors.ErrInterrupted)
	}

	err = fmt.Errorf("running %s: %w", name, err)
	if _, werr := io.WriteString(c.stdout, clearSequence); werr != nil {
		return errors.Join(err, fmt.Errorf("writing clear sequence: %w", werr))
	}
	return err
}

func killedByInterrupt(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	return ok && status.Signaled() && status.Signal() == syscall.SIGINT
}
