package tables

import "math"

// ljMinCoef is the numerical floor below which diagonal Lennard-Jones
// coefficients are treated as zero interaction.
const ljMinCoef = 1.0e-10

// DiagonalLJ computes the per-type Lennard-Jones minimum radius and
// well depth from a diagonal coefficient pair (A, B). Coefficients
// below the floor yield zeros.
func DiagonalLJ(acoef, bcoef float64) (rmin, epsilon float64) {
	if math.IsNaN(acoef) || math.IsNaN(bcoef) || acoef < ljMinCoef || bcoef < ljMinCoef {
		return 0, 0
	}
	factor := 2 * acoef / bcoef
	rmin = math.Pow(factor, 1.0/6.0) * 0.5
	epsilon = bcoef / 2 / factor
	return rmin, epsilon
}

// pairValues resolves one nonbonded matrix entry to its coefficient
// pair and derived radius/well depth. Positive indices address the
// Lennard-Jones tables; negative indices redirect to the hydrogen-bond
// tables (10-12 potential) and are tagged with source "HBOND".
type pairValues struct {
	ACoef   float64
	BCoef   float64
	Rmin    float64
	Epsilon float64
	Source  string
}

func lookupPairValues(pairIndex int, acoef, bcoef, hbondA, hbondB []float64) pairValues {
	nan := math.NaN()
	out := pairValues{ACoef: nan, BCoef: nan, Rmin: nan, Epsilon: nan}
	switch {
	case pairIndex > 0:
		out.Source = "LJ"
		if pairIndex <= len(acoef) && pairIndex <= len(bcoef) {
			a := acoef[pairIndex-1]
			b := bcoef[pairIndex-1]
			out.ACoef = a
			out.BCoef = b
			if a > 0 && b > 0 {
				out.Epsilon = b * b / (4 * a)
				out.Rmin = math.Pow(2*a/b, 1.0/6.0)
			}
		}
	case pairIndex < 0:
		if len(hbondA) == 0 || len(hbondB) == 0 {
			return out
		}
		out.Source = "HBOND"
		hb := -pairIndex - 1
		if hb < len(hbondA) && hb < len(hbondB) {
			out.ACoef = hbondA[hb]
			out.BCoef = hbondB[hb]
		}
	}
	return out
}

// lookupNonbondedPair resolves the matrix entry for a type pair,
// falling back to the transposed entry when the primary one is zero.
func lookupNonbondedPair(
	nonbondIndex []int, ntypes, typeA, typeB int,
	acoef, bcoef, hbondA, hbondB []float64,
) (int, pairValues) {
	pairIndex := 0
	if idx := (typeA-1)*ntypes + (typeB - 1); idx >= 0 && idx < len(nonbondIndex) {
		pairIndex = nonbondIndex[idx]
	}
	if pairIndex == 0 {
		if idx := (typeB-1)*ntypes + (typeA - 1); idx >= 0 && idx < len(nonbondIndex) {
			pairIndex = nonbondIndex[idx]
		}
	}
	return pairIndex, lookupPairValues(pairIndex, acoef, bcoef, hbondA, hbondB)
}
