package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fourier/dsp/transform"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSizeListSet(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2,4,8", want: "2,4,8"},
		{in: " 16 , 32 ,", want: "16,32"},
		{in: "", wantErr: true},
		{in: "4,x", wantErr: true},
		{in: "-2", wantErr: true},
	}
	for _, tt := range tests {
		var s sizeList
		err := s.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && s.String() != tt.want {
			t.Fatalf("Set(%q) = %s, want %s", tt.in, s, tt.want)
		}
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	o, err := parseOptions(nil, env(nil), io.Discard, quietLogger())
	if err != nil {
		t.Fatalf("parseOptions error: %v", err)
	}
	if o.sizes.String() != "2,4,8,16,32,64,128,256,512" {
		t.Fatalf("sizes = %s", o.sizes)
	}
	if o.normalization != transform.NormalizeOnce || o.engine != "recursive" || o.format != "table" {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestEnvOverride(t *testing.T) {
	vars := map[string]string{
		"FFTBENCH_SIZES":     "4,8",
		"FFTBENCH_NORMALIZE": "per-level",
		"FFTBENCH_ENGINE":    "iterative",
	}
	o, err := parseOptions([]string{"-engine", "recursive"}, env(vars), io.Discard, quietLogger())
	if err != nil {
		t.Fatalf("parseOptions error: %v", err)
	}
	if o.sizes.String() != "4,8" {
		t.Fatalf("sizes = %s, want 4,8", o.sizes)
	}
	if o.normalization != transform.NormalizePerLevel {
		t.Fatalf("normalization = %v, want per-level", o.normalization)
	}
	if o.engine != "recursive" {
		t.Fatalf("command line flag should win, engine = %q", o.engine)
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	_, err := parseOptions(nil, env(map[string]string{"FFTBENCH_SEED": "abc"}), io.Discard, quietLogger())
	if err == nil || !strings.Contains(err.Error(), "FFTBENCH_SEED") {
		t.Fatalf("err = %v, want env error naming FFTBENCH_SEED", err)
	}
}

func TestParseOptionsRejects(t *testing.T) {
	tests := [][]string{
		{"-sizes", "4,6"},
		{"-engine", "bluestein"},
		{"-normalize", "never"},
		{"-tolerance", "-1"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := parseOptions(args, env(nil), io.Discard, quietLogger()); err == nil {
			t.Fatalf("parseOptions(%v) succeeded, want error", args)
		}
	}

	_, err := parseOptions([]string{"-sizes", "12"}, env(nil), io.Discard, quietLogger())
	if !errors.Is(err, transform.ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestEnvName(t *testing.T) {
	if got := envName("max-depth"); got != "FFTBENCH_MAX_DEPTH" {
		t.Fatalf("envName = %q", got)
	}
}

func TestRunCSVToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sizes", "2,4", "-seed", "7", "-format", "csv"}, env(nil), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}

	rows, err := csv.NewReader(&stdout).ReadAll()
	if err != nil {
		t.Fatalf("stdout is not CSV: %v\n%s", err, stdout.String())
	}
	if len(rows) != 3 || rows[1][0] != "2" || rows[2][3] != "168" || rows[2][4] != "72" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	if !strings.Contains(stderr.String(), "\nN = 4:\n") {
		t.Fatalf("summary missing from stderr:\n%s", stderr.String())
	}
}

func TestRunTableWithVerify(t *testing.T) {
	for _, engine := range []string{"recursive", "iterative"} {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-sizes", "1,8,64", "-seed", "3", "-engine", engine, "-verify"}, env(nil), &stdout, &stderr)
		if code != 0 {
			t.Fatalf("%s: exit code %d, stderr:\n%s", engine, code, stderr.String())
		}
		out := stdout.String()
		if !strings.Contains(out, "FFT: Time = ") || !strings.Contains(out, "Speedup") {
			t.Fatalf("%s: unexpected output:\n%s", engine, out)
		}
	}
}

func TestRunPerLevelVerifiesDirectOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sizes", "16", "-seed", "3", "-normalize", "per-level", "-verify", "-format", "none"},
		env(nil), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "direct engine only") {
		t.Fatalf("missing warning:\n%s", stderr.String())
	}
}

func TestRunWritesReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-sizes", "2,4,8", "-seed", "1", "-format", "json", "-out", path}, env(nil), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"fft_ops": 216`) {
		t.Fatalf("unexpected report:\n%s", data)
	}
	if !strings.Contains(stdout.String(), "N = 8:") {
		t.Fatalf("summary missing from stdout:\n%s", stdout.String())
	}
}

func TestRunFailures(t *testing.T) {
	tests := [][]string{
		{"-sizes", "3"},
		{"-format", "xml"},
		{"-out", filepath.Join(t.TempDir(), "missing", "dir", "out.csv")},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, env(nil), &stdout, &stderr); code != 1 {
			t.Fatalf("run(%v) = %d, want 1", args, code)
		}
		if stderr.Len() == 0 {
			t.Fatalf("run(%v) logged nothing", args)
		}
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, env(nil), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stderr.String(), "FFTBENCH_") {
		t.Fatalf("usage does not mention environment:\n%s", stderr.String())
	}
}

func TestSeedZeroIsReproducible(t *testing.T) {
	o, err := parseOptions([]string{"-seed", "0"}, env(nil), io.Discard, quietLogger())
	if err != nil {
		t.Fatalf("parseOptions error: %v", err)
	}
	if !o.seedSet {
		t.Fatal("explicit -seed 0 not recorded")
	}

	a, _ := newGenerator(o).Generate(32)
	b, _ := newGenerator(o).Generate(32)
	if a == nil || newGenerator(o).Seed() != 0 {
		t.Fatalf("seed = %d, want 0", newGenerator(o).Seed())
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between runs: %v != %v", i, a[i], b[i])
		}
	}

	fromEnv, err := parseOptions(nil, env(map[string]string{"FFTBENCH_SEED": "0"}), io.Discard, quietLogger())
	if err != nil {
		t.Fatalf("parseOptions error: %v", err)
	}
	if !fromEnv.seedSet {
		t.Fatal("FFTBENCH_SEED=0 not recorded")
	}

	unset, _ := parseOptions(nil, env(nil), io.Discard, quietLogger())
	if unset.seedSet {
		t.Fatal("seed recorded without -seed")
	}
}
