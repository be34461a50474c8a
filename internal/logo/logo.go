package logo

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Style is a named display style for one logo line.
type Style struct {
	Name  string
	color *color.Color
}

// Sprint renders s in the style.
func (st Style) Sprint(s string) string {
	if st.color == nil {
		return s
	}
	return st.color.Sprint(s)
}

// NewStyle builds a Style from fatih/color attributes.
func NewStyle(name string, attrs ...color.Attribute) Style {
	return Style{Name: name, color: color.New(attrs...)}
}

// DefaultStyles is the palette the logo cycles through.
func DefaultStyles() []Style {
	return []Style{
		NewStyle("bold bright_cyan", color.Bold, color.FgHiCyan),
		NewStyle("bold bright_green", color.Bold, color.FgHiGreen),
		NewStyle("bold bright_blue", color.Bold, color.FgHiBlue),
		NewStyle("bold bright_magenta", color.Bold, color.FgHiMagenta),
		NewStyle("bold bright_yellow", color.Bold, color.FgHiYellow),
	}
}

// defaultArt is the Denoyey logo followed by the project link. The last
// row is eight spaces and still takes a style from the cycle.
var defaultArt = []string{
	` /$$$$$$$                                                             `,
	`| $$__  $$                                                            `,
	`| $$  \ $$  /$$$$$$  /$$$$$$$   /$$$$$$  /$$   /$$  /$$$$$$  /$$   /$$`,
	`| $$  | $$ /$$__  $$| $$__  $$ /$$__  $$| $$  | $$ /$$__  $$| $$  | $$`,
	`| $$  | $$| $$$$$$$$| $$  \ $$| $$  \ $$| $$  | $$| $$$$$$$$| $$  | $$`,
	`| $$  | $$| $$_____/| $$  | $$| $$  | $$| $$  | $$| $$_____/| $$  | $$`,
	`| $$$$$$$/|  $$$$$$$| $$  | $$|  $$$$$$/|  $$$$$$$|  $$$$$$$|  $$$$$$$`,
	`|_______/  \_______/|__/  |__/ \______/  \____  $$ \_______/ \____  $$`,
	`                                         /$$  | $$           /$$  | $$`,
	`                                        |  $$$$$$/          |  $$$$$$/`,
	`                                         \______/            \______/ `,
	``,
	`              Github: github.com/denoyey/Mentahan-Python`,
	`        `,
}

// DefaultArt returns a copy of the built-in logo lines.
func DefaultArt() []string {
	return append([]string(nil), defaultArt...)
}

// FigureLines renders text as ASCII art with a go-figure font. An empty
// font selects "standard". Trailing blank rows are dropped.
func FigureLines(text, font string) (rows []string, err error) {
	// go-figure panics on fonts it cannot load.
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("rendering %q with font %q: %v", text, font, r)
		}
	}()

	rows = figure.NewFigure(text, font, false).Slicify()
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Renderer prints a fixed block of text, giving each line the next style
// from a palette that is shuffled once at construction.
type Renderer struct {
	lines  []string
	styles []Style
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	lines  []string
	styles []Style
	rng    *rand.Rand
}

// WithLines replaces the built-in art. An empty slice is ignored.
func WithLines(lines []string) Option {
	return func(o *options) {
		if len(lines) > 0 {
			o.lines = lines
		}
	}
}

// WithStyles replaces the default palette. An empty palette is ignored.
func WithStyles(styles []Style) Option {
	return func(o *options) {
		if len(styles) > 0 {
			o.styles = styles
		}
	}
}

// WithRand sets the source used to shuffle the palette.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// New builds a Renderer and shuffles its palette.
func New(opts ...Option) *Renderer {
	o := options{
		lines:  defaultArt,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	styles := append([]Style(nil), o.styles...)
	shuffle := rand.Shuffle
	if o.rng != nil {
		shuffle = o.rng.Shuffle
	}
	shuffle(len(styles), func(i, j int) {
		styles[i], styles[j] = styles[j], styles[i]
	})

	return &Renderer{
		lines:  append([]string(nil), o.lines...),
		styles: styles,
	}
}

// Styles returns the palette in its shuffled order.
func (r *Renderer) Styles() []Style {
	return append([]Style(nil), r.styles...)
}

// Lines yields every logo line with its style, cycling through the palette.
func (r *Renderer) Lines() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		for i, line := range r.lines {
			if !yield(line, r.styles[i%len(r.styles)]) {
				return
			}
		}
	}
}

// Render writes the styled logo to w, one line per row.
func (r *Renderer) Render(w io.Writer) error {
	for line, style := range r.Lines() {
		if _, err := fmt.Fprintln(w, style.Sprint(line)); err != nil {
			return fmt.Errorf("failed to print logo: %w", err)
		}
	}
	return nil
}
