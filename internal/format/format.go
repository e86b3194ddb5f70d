// Package format defines the output boundary between internal/scan's
// Result and whatever a caller wants to do with it. internal/format/jsonfmt
// is the one real implementation; table, sarif, html, and markdown are
// named here as documented stubs so a collaborator can add them later
// without touching internal/scan.
package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/reachlab/depscan/internal/format/jsonfmt"
	"github.com/reachlab/depscan/internal/scan"
)

// Writer renders a scan Result to w. A Writer must not mutate result.
type Writer interface {
	Write(w io.Writer, result *scan.Result) error
}

// ErrUnimplemented is returned by every stub Writer in this package. It
// exists so a caller wiring --output=table today gets a clear, typed
// failure instead of a silent format.Writer that was never finished.
var ErrUnimplemented = errors.New("format: writer not implemented")

// Name identifies one of the output formats recognized by --output.
type Name string

const (
	JSON     Name = "json"
	Table    Name = "table"
	SARIF    Name = "sarif"
	HTML     Name = "html"
	Markdown Name = "markdown"
)

// stub is a Writer that always fails with ErrUnimplemented, carrying its
// format name for the error message.
type stub Name

func (s stub) Write(io.Writer, *scan.Result) error {
	return fmt.Errorf("%s: %w", string(s), ErrUnimplemented)
}

// ForName resolves name to its Writer. Unknown names also resolve to an
// unimplemented stub rather than a nil Writer, so callers can always call
// Write without a nil check.
func ForName(name Name) Writer {
	switch name {
	case JSON:
		return jsonfmt.Writer{}
	case Table, SARIF, HTML, Markdown:
		return stub(name)
	default:
		return stub(name)
	}
}
