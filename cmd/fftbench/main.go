// Command fftbench times the direct DFT against the radix-2 FFT.
//
// Usage:
//
//	fftbench [flags]
//
// For every size it prints the elapsed time and operation count of both
// engines, then renders the whole series in the chosen report format.
//
// Examples:
//
//	fftbench
//	fftbench -sizes 64,128,256 -seed 42
//	fftbench -engine iterative -verify
//	fftbench -format csv -out timings.csv
//	FFTBENCH_NORMALIZE=per-level fftbench
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fourier/bench"
	"github.com/cwbudde/algo-fourier/dsp/signal"
	"github.com/cwbudde/algo-fourier/dsp/transform"
	"github.com/cwbudde/algo-fourier/dsp/transform/reference"
	"github.com/cwbudde/algo-fourier/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	o, err := parseOptions(args, lookup, stderr, log)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		return 1
	}
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := runBenchmark(o, stdout, stderr, log); err != nil {
		log.WithError(err).Error("benchmark failed")
		return 1
	}
	return 0
}

func runBenchmark(o options, stdout, stderr io.Writer, log *logrus.Logger) (err error) {
	reportOut := stdout
	if o.out != "" {
		f, createErr := os.Create(o.out)
		if createErr != nil {
			return fmt.Errorf("create report file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close report file: %w", cerr)
			}
		}()
		reportOut = f
	}

	rep, err := report.New(o.format, reportOut)
	if err != nil {
		return err
	}

	// Machine readable output on stdout must not be interleaved with the
	// per-size summaries.
	summaryOut := stdout
	if o.out == "" && isMachineFormat(o.format) {
		summaryOut = stderr
	}

	gen := newGenerator(o)

	fast := newFastEngine(o)
	log.WithFields(logrus.Fields{
		"sizes":     o.sizes.String(),
		"seed":      gen.Seed(),
		"engine":    fast.Name(),
		"normalize": o.normalization.String(),
		"format":    o.format,
	}).Debug("starting benchmark")

	hopts := []bench.Option{
		bench.WithSource(gen),
		bench.WithRecursive(fast),
		bench.WithOutput(summaryOut),
	}
	if o.verify {
		hopts = append(hopts, bench.WithVerifier(newVerifier(o, fast.Name(), log)))
	}

	series, runErr := bench.New(hopts...).Run(o.sizes)
	if runErr != nil && series.Len() == 0 {
		return runErr
	}
	if err := rep.Report(series); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return runErr
}

func isMachineFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv", "json":
		return true
	}
	return false
}

// newGenerator seeds from -seed when it was given, including zero, and from
// the clock otherwise.
func newGenerator(o options) *signal.Generator {
	if o.seedSet {
		return signal.NewGeneratorWithOptions(nil, signal.WithSeed(o.seed))
	}
	return signal.NewGenerator()
}

func newFastEngine(o options) transform.Engine {
	opt := transform.WithNormalization(o.normalization)
	if o.engine == "iterative" {
		return transform.NewIterative(opt)
	}
	return transform.NewRecursive(opt)
}

// newVerifier checks both engines against the library transforms. Per-level
// normalization scales the fast engine's bins differently, so only the
// direct engine is checked in that mode.
func newVerifier(o options, fastName string, log logrus.FieldLogger) bench.Verifier {
	checkFast := o.normalization == transform.NormalizeOnce
	if !checkFast {
		log.Warn("per-level normalization: verifying the direct engine only")
	}
	return func(x []float64, direct, fast transform.Result) error {
		candidates := []reference.Candidate{{Name: transform.Direct{}.Name(), Spectrum: direct.Spectrum}}
		if checkFast {
			candidates = append(candidates, reference.Candidate{Name: fastName, Spectrum: fast.Spectrum})
		}
		devs, err := reference.Check(x, candidates, reference.AlgoFFT{}, reference.Gonum{}, reference.GoertzelBank{})
		if err != nil {
			return err
		}
		for _, d := range devs {
			log.WithFields(logrus.Fields{
				"n":         d.N,
				"candidate": d.Candidate,
				"oracle":    d.Oracle,
				"max_abs":   d.MaxAbs,
			}).Debug("verified")
		}
		return reference.Verify(devs, o.tolerance)
	}
}
