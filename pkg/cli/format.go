// Package cli provides shared terminal helpers for the iosgen tools.
package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether ANSI color should be written to f: it must
// be a terminal and NO_COLOR (per no-color.org) must be unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Painter applies ANSI styles when enabled and passes text through
// otherwise.
type Painter struct {
	Enabled bool
}

// PainterFor returns a Painter that is enabled only when w is a terminal
// accepting color.
func PainterFor(w io.Writer) Painter {
	f, ok := w.(*os.File)
	return Painter{Enabled: ok && ColorEnabled(f)}
}

// Bold wraps s in ANSI bold.
func (p Painter) Bold(s string) string {
	return p.wrap("\033[1m", s)
}

// Dim wraps s in ANSI dim.
func (p Painter) Dim(s string) string {
	return p.wrap("\033[2m", s)
}

func (p Painter) wrap(code, s string) string {
	if !p.Enabled {
		return s
	}
	return code + s + "\033[0m"
}
