// Package logo prints the mentahan ASCII logo.
//
// Each line of the logo gets the next style from a small palette. The
// palette order is shuffled once when the Renderer is built and reused for
// every render, so one process always shows the same color sequence.
//
//	r := logo.New()
//	_ = r.Render(os.Stdout)
//
// Colors come from fatih/color and are dropped automatically when NO_COLOR
// is set or stdout is not a terminal.
package logo
