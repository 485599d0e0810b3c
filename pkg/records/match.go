package records

// MatchTriplet reports whether an angle record (a,b,c) matches the
// selected serials exactly forward or exactly reversed.
func MatchTriplet(a, b, c int, serials []int) bool {
	if len(serials) < 3 {
		return false
	}
	return (a == serials[0] && b == serials[1] && c == serials[2]) ||
		(a == serials[2] && b == serials[1] && c == serials[0])
}

// MatchTripletUnordered reports set equality between the record and
// the first three selected serials. Fallback only: callers must try
// ordered matching first.
func MatchTripletUnordered(a, b, c int, serials []int) bool {
	if len(serials) < 3 {
		return false
	}
	return sameMultiset([]int{a, b, c}, serials[:3])
}

// MatchQuad reports whether a dihedral record (a,b,c,d) matches the
// selected serials exactly forward or exactly reversed.
func MatchQuad(a, b, c, d int, serials []int) bool {
	if len(serials) < 4 {
		return false
	}
	return (a == serials[0] && b == serials[1] && c == serials[2] && d == serials[3]) ||
		(d == serials[0] && c == serials[1] && b == serials[2] && a == serials[3])
}

// MatchQuadUnordered reports set equality between the record and the
// first four selected serials.
func MatchQuadUnordered(a, b, c, d int, serials []int) bool {
	if len(serials) < 4 {
		return false
	}
	return sameMultiset([]int{a, b, c, d}, serials[:4])
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
