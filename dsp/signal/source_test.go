package signal

import "testing"

func TestFixedReturnsIndependentCopies(t *testing.T) {
	src := Fixed{1, 2, 3, 4}

	a, err := src.Generate(4)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	a[0] = 99

	b, err := src.Generate(2)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(b) != 2 || b[0] != 1 || b[1] != 2 {
		t.Fatalf("unexpected samples: %v", b)
	}
	if src[0] != 1 {
		t.Fatalf("source mutated: %v", src)
	}
}

func TestFixedTooShort(t *testing.T) {
	if _, err := (Fixed{1}).Generate(2); err == nil {
		t.Fatal("expected error when requesting more samples than held")
	}
	if _, err := (Fixed{1}).Generate(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestSourceFunc(t *testing.T) {
	var calls []int
	src := SourceFunc(func(n int) ([]float64, error) {
		calls = append(calls, n)
		return make([]float64, n), nil
	})

	var _ Source = src

	x, err := src.Generate(3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(x) != 3 || len(calls) != 1 || calls[0] != 3 {
		t.Fatalf("unexpected call record: len=%d calls=%v", len(x), calls)
	}
}
