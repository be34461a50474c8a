package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/denoyey/mentahan/internal/configs"
	"github.com/denoyey/mentahan/internal/logfile"
	logger "github.com/denoyey/mentahan/internal/logging"
	"github.com/denoyey/mentahan/internal/logo"
	"github.com/denoyey/mentahan/internal/ui"
	"github.com/denoyey/mentahan/internal/utils"
	"github.com/denoyey/mentahan/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	settingsPath = configs.FileName
	Logger       logger.Logger
)

// RunSetup loads settings, opens the log file and runs the setup workflow.
// Interrupts and run failures are absorbed by the workflow; only problems
// building the collaborators are returned.
func RunSetup(cmd *cobra.Command, args []string) error {
	settings, err := configs.Load(settingsPath)
	if err != nil {
		return err
	}

	Logger = logger.Logger{
		Verbose: settings.Verbose,
		Debug:   settings.Debug,
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
	}
	Logger.Debugf("Loaded settings from %s", ui.Path.Sprint(settingsPath))

	opts, err := settings.LogOptions()
	if err != nil {
		return err
	}

	logFile, err := logfile.Open(opts)
	if err != nil {
		return err
	}
	if last, ok := logFile.LastDate(); ok {
		Logger.Debugf("Opened %s at %s, last entry dated %s", logFile.Name(), ui.Path.Sprint(logFile.Path()), last)
	} else {
		Logger.Debugf("Opened %s at %s", logFile.Name(), ui.Path.Sprint(logFile.Path()))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	system := &workflows.System{
		Clearer: utils.NewClearer(),
		Logo:    newRenderer(settings.Logo),
		Log:     logFile,
		Console: cmd.OutOrStdout(),
		Logger:  Logger,
	}

	result := system.Run(ctx)
	Logger.Infof("Setup %s", result.Outcome)
	if result.Truncated {
		Logger.Infof("Log file %s exceeded %s and was emptied", ui.Path.Sprint(logFile.Path()), ui.Warning.Sprintf("%d KiB", opts.MaxKB))
	}

	return nil
}

// newRenderer builds the logo from settings, falling back to the built-in
// art when the configured text cannot be rendered.
func newRenderer(s configs.LogoSettings) *logo.Renderer {
	if s.Text == "" {
		return logo.New()
	}

	lines, err := logo.FigureLines(s.Text, s.Font)
	if err != nil {
		Logger.Warnf("Using the built-in logo: %v", err)
		return logo.New()
	}
	return logo.New(logo.WithLines(lines))
}
