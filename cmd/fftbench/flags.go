package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fourier/bench"
	"github.com/cwbudde/algo-fourier/dsp/core"
	"github.com/cwbudde/algo-fourier/dsp/transform"
	"github.com/cwbudde/algo-fourier/report"
)

const envPrefix = "FFTBENCH_"

// sizeList is a comma separated list of transform lengths.
type sizeList []int

func (s sizeList) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (s *sizeList) Set(value string) error {
	var sizes []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("size %q: %w", field, err)
		}
		if n < 0 {
			return fmt.Errorf("size %d is negative", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return fmt.Errorf("no sizes in %q", value)
	}
	*s = sizes
	return nil
}

type options struct {
	sizes     sizeList
	seed      int64
	seedSet   bool
	normalize string
	engine    string
	format    string
	out       string
	verify    bool
	tolerance float64
	verbose   bool

	normalization transform.Normalization
}

func newFlagSet(o *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("fftbench", flag.ContinueOnError)
	fs.SetOutput(output)

	o.sizes = bench.DefaultSizes()
	fs.Var(&o.sizes, "sizes", "comma separated transform lengths")
	fs.Int64Var(&o.seed, "seed", 0, "random signal seed (seeded from the clock when unset)")
	fs.StringVar(&o.normalize, "normalize", "once", "recursive engine normalization: once or per-level")
	fs.StringVar(&o.engine, "engine", "recursive", "fast engine: recursive or iterative")
	fs.StringVar(&o.format, "format", "table", "report format: "+strings.Join(report.Formats, ", "))
	fs.StringVar(&o.out, "out", "", "report file (default stdout)")
	fs.BoolVar(&o.verify, "verify", false, "check both engines against algo-fft, gonum and a Goertzel bank")
	fs.Float64Var(&o.tolerance, "tolerance", 1e-9, "maximum absolute bin deviation for -verify")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: fftbench [flags]\n\n")
		fmt.Fprintf(output, "Times the direct DFT against the radix-2 FFT for each size and reports\n")
		fmt.Fprintf(output, "the measured times and operation counts.\n\n")
		fmt.Fprintf(output, "Every flag can also be set through %s<FLAG>.\n\nFlags:\n", envPrefix)
		fs.PrintDefaults()
	}
	return fs
}

// envName maps a flag name to its environment variable.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// envOverride sets every flag that has a non-empty environment variable.
// Flags given on the command line win over the environment.
func envOverride(fs *flag.FlagSet, lookup func(string) (string, bool), log logrus.FieldLogger) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if explicit[f.Name] {
			return
		}
		name := envName(f.Name)
		value, ok := lookup(name)
		if !ok || value == "" {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("environment variable %s: %w", name, err)
			}
			return
		}
		log.WithFields(logrus.Fields{"env": name, "flag": f.Name, "value": value}).
			Debug("environment overrides flag")
	})
	return firstErr
}

// parseOptions parses args, applies environment overrides and validates
// the result.
func parseOptions(args []string, lookup func(string) (string, bool), output io.Writer, log logrus.FieldLogger) (options, error) {
	var o options
	fs := newFlagSet(&o, output)
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := envOverride(fs, lookup, log); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	mode, err := transform.ParseNormalization(o.normalize)
	if err != nil {
		return o, err
	}
	o.normalization = mode

	switch strings.ToLower(o.engine) {
	case "recursive", "iterative":
		o.engine = strings.ToLower(o.engine)
	default:
		return o, fmt.Errorf("unknown engine %q (want recursive or iterative)", o.engine)
	}

	for _, n := range o.sizes {
		if !core.IsPowerOfTwo(n) {
			return o, fmt.Errorf("%w: size %d", transform.ErrInvalidLength, n)
		}
	}
	if o.tolerance < 0 {
		return o, fmt.Errorf("tolerance %g is negative", o.tolerance)
	}
	return o, nil
}
