package parm_test

import (
	"math"
	"testing"

	"github.com/yaklabco/topview/pkg/parm"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain", "      42", 42},
		{"negative", "      -7", -7},
		{"float form truncates", "    12.9", 12},
		{"empty", "        ", 0},
		{"garbage", "    asdf", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parm.ParseInt(parm.Token{Value: tt.raw})
			if got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"scientific", "  1.50000000E+01", 15},
		{"fortran D exponent", "  1.00000000D+01", 10},
		{"lowercase d exponent", "      2.5d-01", 0.25},
		{"negative", " -9.10000000E+00", -9.1},
		{"empty", "                ", 0},
		{"garbage", "   x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parm.ParseFloat(parm.Token{Value: tt.raw})
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ParseFloat(%q) = %g, want %g", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIntSectionValidatesLength(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG ATOM_TYPE_INDEX\n%FORMAT(10I8)\n       1       2       1\n")

	values, err := file.IntSection("ATOM_TYPE_INDEX", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 || values[1] != 2 {
		t.Errorf("unexpected values %v", values)
	}

	if _, err := file.IntSection("ATOM_TYPE_INDEX", 4); !parm.IsCode(err, parm.CodeFormat) {
		t.Errorf("expected format error on length mismatch, got %v", err)
	}
	if _, err := file.IntSection("MISSING_SECTION", 4); !parm.IsCode(err, parm.CodeFormat) {
		t.Errorf("expected format error on missing section, got %v", err)
	}
}

func TestIntSectionZeroExpectation(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG HBOND_ACOEF\n%FORMAT(5E16.8)\n  1.00000000E+00\n")

	// Absent sections satisfy a zero expectation.
	values, err := file.FloatSection("HBOND_BCOEF", 0)
	if err != nil || values != nil {
		t.Errorf("expected nil, nil for absent section, got %v, %v", values, err)
	}

	// A populated section does not.
	if _, err := file.FloatSection("HBOND_ACOEF", 0); !parm.IsCode(err, parm.CodeFormat) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestOptionalFloatSection(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG SCEE_SCALE_FACTOR\n%FORMAT(5E16.8)\n  1.20000000E+00  1.20000000E+00\n")

	values, err := file.OptionalFloatSection("SCEE_SCALE_FACTOR", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 || values[0] != 1.2 {
		t.Errorf("unexpected values %v", values)
	}

	// Absent optional sections fill with NaN.
	fill, err := file.OptionalFloatSection("SCNB_SCALE_FACTOR", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fill) != 2 || !math.IsNaN(fill[0]) || !math.IsNaN(fill[1]) {
		t.Errorf("expected NaN fill, got %v", fill)
	}

	// A present section with the wrong length still fails.
	if _, err := file.OptionalFloatSection("SCEE_SCALE_FACTOR", 3); !parm.IsCode(err, parm.CodeFormat) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestValueCacheMemoizes(t *testing.T) {
	t.Parallel()

	file := parm.Parse(miniParm)
	cache := parm.NewValueCache(file)

	first := cache.Floats("CHARGE")
	second := cache.Floats("CHARGE")
	if len(first) != 4 {
		t.Fatalf("expected 4 values, got %d", len(first))
	}
	if &first[0] != &second[0] {
		t.Error("expected memoized slice to be returned on the second call")
	}
	if cache.Ints("NO_SUCH_SECTION") != nil {
		t.Error("expected nil for absent section")
	}
	if cache.File() != file {
		t.Error("expected File to return the wrapped file")
	}
}
