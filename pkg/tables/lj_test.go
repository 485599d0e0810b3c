package tables

import (
	"math"
	"testing"
)

func TestDiagonalLJ(t *testing.T) {
	t.Parallel()

	rmin, epsilon := DiagonalLJ(100, 10)
	wantRmin := math.Pow(20, 1.0/6.0) * 0.5
	if math.Abs(rmin-wantRmin) > 1e-12 {
		t.Errorf("rmin = %g, want %g", rmin, wantRmin)
	}
	if math.Abs(epsilon-0.25) > 1e-12 {
		t.Errorf("epsilon = %g, want 0.25", epsilon)
	}
}

func TestDiagonalLJFloorsTinyCoefficients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		acoef, bcoef float64
	}{
		{"zero A", 0, 10},
		{"zero B", 100, 0},
		{"below floor", 1e-11, 1e-11},
		{"nan", math.NaN(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rmin, epsilon := DiagonalLJ(tt.acoef, tt.bcoef)
			if rmin != 0 || epsilon != 0 {
				t.Errorf("expected zeros, got rmin=%g epsilon=%g", rmin, epsilon)
			}
		})
	}
}

func TestLookupPairValues(t *testing.T) {
	t.Parallel()

	acoef := []float64{100, 50}
	bcoef := []float64{10, 5}

	got := lookupPairValues(1, acoef, bcoef, nil, nil)
	if got.Source != "LJ" {
		t.Errorf("expected LJ source, got %q", got.Source)
	}
	if math.Abs(got.Epsilon-0.25) > 1e-12 {
		t.Errorf("epsilon = %g, want 0.25", got.Epsilon)
	}
	if math.Abs(got.Rmin-math.Pow(20, 1.0/6.0)) > 1e-12 {
		t.Errorf("rmin = %g, want %g", got.Rmin, math.Pow(20, 1.0/6.0))
	}
}

func TestLookupPairValuesHBond(t *testing.T) {
	t.Parallel()

	hbondA := []float64{7000}
	hbondB := []float64{2500}

	got := lookupPairValues(-1, nil, nil, hbondA, hbondB)
	if got.Source != "HBOND" {
		t.Errorf("expected HBOND source, got %q", got.Source)
	}
	if got.ACoef != 7000 || got.BCoef != 2500 {
		t.Errorf("unexpected coefficients %g/%g", got.ACoef, got.BCoef)
	}

	// Without hydrogen-bond arrays the source stays untagged.
	got = lookupPairValues(-1, nil, nil, nil, nil)
	if got.Source != "" {
		t.Errorf("expected empty source, got %q", got.Source)
	}
}

func TestLookupNonbondedPairTransposeFallback(t *testing.T) {
	t.Parallel()

	// Primary cell (1,2) is zero; the transposed cell carries the index.
	nonbond := []int{1, 0, 2, 3}
	acoef := []float64{100, 50, 200}
	bcoef := []float64{10, 5, 20}

	pairIndex, values := lookupNonbondedPair(nonbond, 2, 1, 2, acoef, bcoef, nil, nil)
	if pairIndex != 2 {
		t.Fatalf("expected fallback pair index 2, got %d", pairIndex)
	}
	if values.ACoef != 50 {
		t.Errorf("expected acoef 50, got %g", values.ACoef)
	}
}
