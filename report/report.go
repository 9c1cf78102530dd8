// Package report renders benchmark series for people and tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-fourier/bench"
)

// Reporter consumes one finished benchmark series.
type Reporter interface {
	Report(s bench.Series) error
}

// Formats lists the names accepted by [New].
var Formats = []string{"table", "csv", "json", "none"}

// New returns the reporter for format writing to w.
func New(format string, w io.Writer) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "":
		return NewTable(w), nil
	case "csv":
		return NewCSV(w), nil
	case "json":
		return NewJSON(w), nil
	case "none":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Discard ignores every series.
type Discard struct{}

// Report does nothing.
func (Discard) Report(bench.Series) error { return nil }
