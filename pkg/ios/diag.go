// Package ios builds Cisco IOS configuration records and renders them as
// configuration-mode text.
//
// Nothing in this package prints. Problems that should not stop
// generation are returned as Diagnostic values alongside the rendered
// text so the caller decides how to surface them.
package ios

import "fmt"

// Diagnostic is a non-fatal problem found while populating or rendering
// a configuration.
type Diagnostic struct {
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Field == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Field, d.Message)
}

// Rendered is the output of a renderer: configuration text plus any
// diagnostics collected along the way.
type Rendered struct {
	Text        string
	Diagnostics []Diagnostic
}

// HasDiagnostics reports whether anything was flagged.
func (r Rendered) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}
