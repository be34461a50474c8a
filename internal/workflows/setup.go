package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	merrors "github.com/denoyey/mentahan/internal/errors"
	logger "github.com/denoyey/mentahan/internal/logging"
	"github.com/denoyey/mentahan/internal/ui"
)

// Messages written by a setup run.
const (
	StartedMessage     = "SystemSetup started successfully."
	InterruptedMessage = "Process interrupted by user."
)

// ScreenClearer clears the terminal. Failures are reported, never fatal.
type ScreenClearer interface {
	Clear() error
}

// LogoRenderer prints the logo.
type LogoRenderer interface {
	Render(w io.Writer) error
}

// LogRecorder is the log file written by a setup run.
type LogRecorder interface {
	Info(msg string) error
	Warning(msg string) error
	Error(msg string) error
	TruncateIfOversized() (bool, error)
	Close() error
}

// Outcome is how a setup run ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeInterrupted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeInterrupted:
		return "interrupted"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// System wires the collaborators of a setup run.
type System struct {
	Clearer ScreenClearer
	Logo    LogoRenderer
	Log     LogRecorder

	// Console receives the logo and run notices. Defaults to os.Stdout.
	Console io.Writer

	// Logger reports diagnostics that do not belong in the log file.
	Logger logger.Logger
}

// SetupResult contains the outcome of a setup run.
type SetupResult struct {
	Outcome Outcome

	// Err is the interrupt or failure that ended the run early.
	Err error

	// Truncated is true when the log file was emptied at the end of the run.
	Truncated bool
}

// Run clears the screen, prints the logo and records the start message.
//
// An interrupt (ctx cancelled) is logged as a WARNING and any other error as
// an ERROR; both are also shown on the console and absorbed. Whatever the
// outcome, the log file is checked for truncation exactly once and closed.
func (s *System) Run(ctx context.Context) *SetupResult {
	result := &SetupResult{Outcome: OutcomeCompleted}
	defer s.finish(result)

	err := s.steps(ctx)
	switch {
	case err == nil:
		s.Logger.Infof("Setup completed")
	case errors.Is(err, merrors.ErrInterrupted):
		result.Outcome = OutcomeInterrupted
		result.Err = err
		s.record(s.Log.Warning, InterruptedMessage)
		s.notify(InterruptedMessage)
	default:
		result.Outcome = OutcomeFailed
		result.Err = err
		s.record(s.Log.Error, fmt.Sprintf("Unexpected error: %v", err))
		s.notify(fmt.Sprintf("Error: %v", err))
	}

	return result
}

func (s *System) steps(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	if err := checkInterrupt(ctx); err != nil {
		return err
	}
	if err := s.Clearer.Clear(); err != nil {
		// SIGINT can kill the clear command before ctx sees it.
		if errors.Is(err, merrors.ErrInterrupted) {
			return err
		}
		s.Logger.Debugf("Clearing the screen failed: %v", err)
	}

	if err := checkInterrupt(ctx); err != nil {
		return err
	}
	if err := s.Logo.Render(s.console()); err != nil {
		return err
	}

	if err := checkInterrupt(ctx); err != nil {
		return err
	}
	return s.Log.Info(StartedMessage)
}

func checkInterrupt(ctx context.Context) error {
	if ctx.Err() != nil {
		return merrors.ErrInterrupted
	}
	return nil
}

// finish runs on every exit path.
func (s *System) finish(result *SetupResult) {
	truncated, err := s.Log.TruncateIfOversized()
	if err != nil {
		s.Logger.Warnf("Checking log size failed: %v", err)
	}
	result.Truncated = truncated
	if truncated {
		s.Logger.Debugf("Log file exceeded its size limit and was emptied")
	}

	if err := s.Log.Close(); err != nil {
		s.Logger.Warnf("Closing log file failed: %v", err)
	}
}

func (s *System) record(write func(string) error, msg string) {
	if err := write(msg); err != nil {
		s.Logger.Errorf("Writing log record failed: %v", err)
	}
}

func (s *System) notify(msg string) {
	if err := ui.Notice.Fprintln(s.console(), msg); err != nil {
		s.Logger.Errorf("Writing console notice failed: %v", err)
	}
}

func (s *System) console() io.Writer {
	if s.Console != nil {
		return s.Console
	}
	return os.Stdout
}
