package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/xerrors"

	"github.com/cwbudde/algo-fourier/bench"
)

// Recorder produces the fields of one CSV row.
type Recorder interface {
	Record() []string
}

// An Encoder writes CSV records to an output stream.
type Encoder struct {
	w *csv.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode writes the CSV record representing v followed by a newline. v must
// implement Recorder.
func (enc *Encoder) Encode(v any) (err error) {
	defer func() {
		if r, ok := recover().(error); ok {
			err = xerrors.Errorf("recovered: %w", r)
		}
	}()

	if err := enc.w.Write(v.(Recorder).Record()); err != nil {
		return xerrors.Errorf("write record: %w", err)
	}
	enc.w.Flush()

	return enc.w.Error()
}

type csvHeader struct{}

func (csvHeader) Record() []string {
	return []string{"n", "dft_seconds", "fft_seconds", "dft_ops", "fft_ops"}
}

type csvRow bench.Record

func (r csvRow) Record() []string {
	return []string{
		strconv.Itoa(r.N),
		strconv.FormatFloat(r.DirectTime.Seconds(), 'f', 9, 64),
		strconv.FormatFloat(r.RecursiveTime.Seconds(), 'f', 9, 64),
		strconv.FormatUint(uint64(r.DirectOps), 10),
		strconv.FormatUint(uint64(r.RecursiveOps), 10),
	}
}

// CSV writes a header line and one row per size.
type CSV struct {
	enc *Encoder
}

// NewCSV creates a CSV reporter.
func NewCSV(w io.Writer) *CSV {
	return &CSV{enc: NewEncoder(w)}
}

// Report implements [Reporter].
func (c *CSV) Report(s bench.Series) error {
	if err := c.enc.Encode(csvHeader{}); err != nil {
		return xerrors.Errorf("csv header: %w", err)
	}
	for _, r := range s.Records() {
		if err := c.enc.Encode(csvRow(r)); err != nil {
			return xerrors.Errorf("csv row N=%d: %w", r.N, err)
		}
	}
	return nil
}
