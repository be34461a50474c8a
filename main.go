package main

import (
	"fmt"
	"os"

	"github.com/denoyey/mentahan/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mentahan",
	Short: "Mentahan - clear the terminal, show the logo and record the start in the log.",
	Long: `Mentahan is a small startup utility.

It clears the terminal, prints the colored Mentahan logo and appends a line to
log/mentahan.log. Entries from different days are separated by a blank block,
and the log is emptied once it grows past its size limit.

Settings are read from mentahan.toml in the working directory when present.

Usage:
  mentahan
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          cmd.RunSetup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
