package reference

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fourier/dsp/transform"
	"github.com/cwbudde/algo-fourier/internal/testutil"
)

func TestOraclesAgreeWithEngines(t *testing.T) {
	engines := []transform.Engine{transform.Direct{}, transform.NewRecursive(), transform.NewIterative()}
	oracles := []transform.Engine{AlgoFFT{}, Gonum{}}

	for _, n := range []int{1, 2, 4, 8, 16, 64, 256, 512} {
		x := testutil.DeterministicUniform(int64(n)+77, n)
		for _, o := range oracles {
			ref, err := o.Transform(x)
			if err != nil {
				t.Fatalf("%s n=%d: error = %v", o.Name(), n, err)
			}
			if ref.Ops != 0 {
				t.Fatalf("%s: Ops = %d, want 0", o.Name(), ref.Ops)
			}
			for _, e := range engines {
				got, err := e.Transform(x)
				if err != nil {
					t.Fatalf("%s n=%d: error = %v", e.Name(), n, err)
				}
				testutil.RequireSliceClose(t, got.Spectrum.Real, ref.Spectrum.Real, 1e-12, 1e-9)
				testutil.RequireSliceClose(t, got.Spectrum.Imag, ref.Spectrum.Imag, 1e-12, 1e-9)
			}
		}
	}
}

func TestGonumAnyLength(t *testing.T) {
	for _, n := range []int{3, 5, 6, 12} {
		x := testutil.DeterministicUniform(int64(n), n)
		want, _ := transform.Direct{}.Transform(x)
		got, err := Gonum{}.Transform(x)
		if err != nil {
			t.Fatalf("n=%d: error = %v", n, err)
		}
		if !Agree(got.Spectrum, want.Spectrum, 1e-12) {
			t.Fatalf("n=%d: gonum disagrees with direct", n)
		}
	}
}

func TestUncheckedRecursiveDivergesFromOracle(t *testing.T) {
	x := testutil.DeterministicUniform(6, 6)
	ref, _ := Gonum{}.Transform(x)
	got, err := transform.NewRecursive(transform.WithUncheckedLength()).Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if Agree(got.Spectrum, ref.Spectrum, 1e-6) {
		t.Fatal("expected non-power-of-two recursion to diverge")
	}
}

func TestTrivialLengths(t *testing.T) {
	for _, o := range []transform.Engine{AlgoFFT{}, Gonum{}} {
		res, err := o.Transform(nil)
		if err != nil || res.Spectrum.Len() != 0 || len(res.Spectrum.Imag) != 0 {
			t.Fatalf("%s: empty input gave %+v, %v", o.Name(), res.Spectrum, err)
		}
		res, err = o.Transform([]float64{2})
		if err != nil || res.Spectrum.Real[0] != 2 || res.Spectrum.Imag[0] != 0 {
			t.Fatalf("%s: single sample gave %+v, %v", o.Name(), res.Spectrum, err)
		}
	}
}

func TestCompare(t *testing.T) {
	a := transform.SpectrumFromComplex([]complex128{1 + 1i, 2})
	b := transform.SpectrumFromComplex([]complex128{1 + 1.5i, 2.25})

	d, err := Compare(a, b)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("Compare = %v, want 0.5", d)
	}

	if _, err := Compare(a, transform.NewSpectrum(3)); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if Agree(a, transform.NewSpectrum(3), 1) {
		t.Fatal("Agree must fail on length mismatch")
	}
}

func TestCheckAndVerify(t *testing.T) {
	x := testutil.DeterministicUniform(3, 32)
	direct, _ := transform.Direct{}.Transform(x)
	perLevel, _ := transform.NewRecursive(transform.WithNormalization(transform.NormalizePerLevel)).Transform(x)

	devs, err := Check(x, []Candidate{{Name: "DFT", Spectrum: direct.Spectrum}}, AlgoFFT{}, Gonum{})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if len(devs) != 2 {
		t.Fatalf("len(devs) = %d, want 2", len(devs))
	}
	if err := Verify(devs, 1e-9); err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	devs, err = Check(x, []Candidate{{Name: "FFT", Spectrum: perLevel.Spectrum}}, Gonum{})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if err := Verify(devs, 1e-9); !errors.Is(err, ErrMismatch) {
		t.Fatalf("Verify err = %v, want ErrMismatch", err)
	}
}
