package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter styles one kind of console text. Without color it falls back to
// its plain decoration, if any.
type Formatter struct {
	color *color.Color
	open  string
	close string
}

func (f Formatter) style(text string) string {
	if noColor() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// Sprint styles the arguments as fmt.Sprint would join them.
func (f Formatter) Sprint(a ...any) string {
	return f.style(fmt.Sprint(a...))
}

// Sprintf styles the formatted string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.style(fmt.Sprintf(format, a...))
}

// Fprintln writes the styled arguments to w followed by a newline.
func (f Formatter) Fprintln(w io.Writer, a ...any) error {
	_, err := fmt.Fprintln(w, f.Sprint(a...))
	return err
}

// noColor reports whether output should stay plain. NO_COLOR wins over
// fatih/color's own terminal detection.
func noColor() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Notice is bold red. Used for the interrupt and error notices that end a run.
	Notice = Formatter{color: color.New(color.FgRed, color.Bold)}

	// Path is yellow.
	Path = Formatter{color: color.New(color.FgYellow)}

	// Warning is bold yellow. Used for size limits and other facts the user
	// may want to act on.
	Warning = Formatter{color: color.New(color.FgYellow, color.Bold)}

	// Highlight is cyan, or 'quoted' without color. Used for settings keys.
	Highlight = Formatter{color: color.New(color.FgCyan), open: "'", close: "'"}
)
