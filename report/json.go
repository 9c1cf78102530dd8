package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-fourier/bench"
)

type jsonRecord struct {
	N                int      `json:"n"`
	DirectSeconds    float64  `json:"dft_seconds"`
	RecursiveSeconds float64  `json:"fft_seconds"`
	DirectOps        uint64   `json:"dft_ops"`
	RecursiveOps     uint64   `json:"fft_ops"`
	DirectStep       *float64 `json:"dft_step,omitempty"`
	RecursiveStep    *float64 `json:"fft_step,omitempty"`
	DirectPerN2      *float64 `json:"dft_per_n2,omitempty"`
	RecursivePerNLgN *float64 `json:"fft_per_nlogn,omitempty"`
}

type jsonGrowth struct {
	DirectExponent    float64 `json:"dft_exponent"`
	RecursiveExponent float64 `json:"fft_exponent"`
}

type jsonDocument struct {
	Records []jsonRecord `json:"records"`
	Growth  *jsonGrowth  `json:"growth,omitempty"`
}

// JSON writes the series as one indented JSON document.
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON reporter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Report implements [Reporter].
func (j *JSON) Report(s bench.Series) error {
	sc, err := s.Scaling()
	if err != nil {
		return fmt.Errorf("json scaling: %w", err)
	}

	doc := jsonDocument{Records: make([]jsonRecord, 0, s.Len())}
	for i, r := range s.Records() {
		doc.Records = append(doc.Records, jsonRecord{
			N:                r.N,
			DirectSeconds:    r.DirectTime.Seconds(),
			RecursiveSeconds: r.RecursiveTime.Seconds(),
			DirectOps:        uint64(r.DirectOps),
			RecursiveOps:     uint64(r.RecursiveOps),
			DirectStep:       finite(sc.DirectSteps[i]),
			RecursiveStep:    finite(sc.RecursiveSteps[i]),
			DirectPerN2:      finite(sc.DirectPerModel[i]),
			RecursivePerNLgN: finite(sc.RecursivePerModel[i]),
		})
	}
	if g, err := s.Growth(); err == nil {
		doc.Growth = &jsonGrowth{
			DirectExponent:    g.DirectExponent,
			RecursiveExponent: g.RecursiveExponent,
		}
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

// finite returns nil for values JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
