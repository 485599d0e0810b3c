package selection

import "github.com/yaklabco/topview/pkg/parm"

// NonbondedPairTotal counts the concrete atom pairs behind a
// nonbonded-pairs row: C(n,2) when both types coincide, otherwise the
// full cross product.
func NonbondedPairTotal(serialsA, serialsB []int, sameType bool) int {
	if sameType {
		n := len(serialsA)
		return n * (n - 1) / 2
	}
	return len(serialsA) * len(serialsB)
}

// NonbondedPairForCursor selects a single atom pair for a cursor
// position without materializing the pair list: a triangular-number
// inverse walk for the same-type case, row/column division otherwise.
func NonbondedPairForCursor(serialsA, serialsB []int, cursor int, sameType bool) (int, int, error) {
	total := NonbondedPairTotal(serialsA, serialsB, sameType)
	if total <= 0 {
		return 0, 0, parm.NotFoundf("no nonbonded pairs available")
	}
	idx := cursor % total
	if sameType {
		i, j, err := combinationPairIndex(len(serialsA), idx)
		if err != nil {
			return 0, 0, err
		}
		return serialsA[i], serialsA[j], nil
	}
	if len(serialsA) == 0 || len(serialsB) == 0 {
		return 0, 0, parm.NotFoundf("no nonbonded pairs available")
	}
	return serialsA[idx/len(serialsB)], serialsB[idx%len(serialsB)], nil
}

// combinationPairIndex maps a 0-based combination index to the (i, j)
// positions of the idx-th pair in lexicographic order over C(count,2).
func combinationPairIndex(count, idx int) (int, int, error) {
	if count < 2 {
		return 0, 0, parm.NotFoundf("need at least two atoms to form a pair")
	}
	remaining := idx
	for i := 0; i < count-1; i++ {
		span := count - i - 1
		if remaining < span {
			return i, i + 1 + remaining, nil
		}
		remaining -= span
	}
	return 0, 0, parm.NotFoundf("index out of range for combination pairs")
}
