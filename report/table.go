package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-fourier/bench"
)

// Table writes an aligned text table followed by the fitted growth exponents.
//
// The step columns hold the count ratio to the previous row and the model
// columns the count divided by N² and N·log2 N.
type Table struct {
	w io.Writer
}

// NewTable creates a table reporter.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Report implements [Reporter].
func (t *Table) Report(s bench.Series) error {
	sc, err := s.Scaling()
	if err != nil {
		return fmt.Errorf("table scaling: %w", err)
	}

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "N\tDFT [s]\tFFT [s]\tDFT ops\tFFT ops\tDFT step\tFFT step\tDFT/N^2\tFFT/NlogN\tSpeedup\n"); err != nil {
		return fmt.Errorf("table header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t-------\t-------\t-------\t-------\t--------\t--------\t-------\t---------\t-------\n"); err != nil {
		return fmt.Errorf("table header: %w", err)
	}

	for i, r := range s.Records() {
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%d\t%d\t%s\t%s\t%s\t%s\t%.2f\n",
			r.N,
			r.DirectTime.Seconds(),
			r.RecursiveTime.Seconds(),
			r.DirectOps,
			r.RecursiveOps,
			cell(sc.DirectSteps[i], 2),
			cell(sc.RecursiveSteps[i], 2),
			cell(sc.DirectPerModel[i], 3),
			cell(sc.RecursivePerModel[i], 3),
			r.Speedup(),
		); err != nil {
			return fmt.Errorf("table row N=%d: %w", r.N, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("table flush: %w", err)
	}

	// Fewer than two usable sizes leave nothing to fit.
	g, fitErr := s.Growth()
	if fitErr != nil {
		return nil //nolint:nilerr
	}
	if _, err := fmt.Fprintf(t.w, "\nGrowth exponent (ops ~ N^p): DFT p=%.3f, FFT p=%.3f\n",
		g.DirectExponent, g.RecursiveExponent); err != nil {
		return fmt.Errorf("table growth: %w", err)
	}
	return nil
}

// cell formats v with prec decimals, or "-" when it is undefined.
func cell(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
