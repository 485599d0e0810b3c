package records

import (
	"sort"

	"github.com/yaklabco/topview/pkg/parm"
)

// Adjacency maps each atom serial to the set of serials it is bonded
// to, derived from both bond sections.
type Adjacency map[int]map[int]bool

// BuildAdjacency derives the bond adjacency map from extracted bonds.
func BuildAdjacency(bonds []Bond) Adjacency {
	adj := make(Adjacency)
	for _, b := range bonds {
		adj.add(b.A, b.B)
		adj.add(b.B, b.A)
	}
	return adj
}

// BuildAdjacencyLoose derives adjacency straight from the cached bond
// section values without length validation. Used by query paths that
// must not fail a highlight call over a count mismatch.
func BuildAdjacencyLoose(cache *parm.ValueCache) Adjacency {
	adj := make(Adjacency)
	for _, name := range BondSectionNames {
		values := cache.Ints(name)
		for idx := 0; idx+2 < len(values); idx += 3 {
			a := SerialFromPointer(values[idx])
			b := SerialFromPointer(values[idx+1])
			adj.add(a, b)
			adj.add(b, a)
		}
	}
	return adj
}

func (a Adjacency) add(from, to int) {
	set := a[from]
	if set == nil {
		set = make(map[int]bool)
		a[from] = set
	}
	set[to] = true
}

// Bonded reports whether the two serials share a bond.
func (a Adjacency) Bonded(x, y int) bool {
	return a[x][y]
}

// ImproperCentral infers the structural central atom of an improper
// quad: the member bonded to the other three. Ties break to the
// smallest serial. Returns false when no member qualifies.
func (a Adjacency) ImproperCentral(serials []int) (int, bool) {
	if len(serials) < 4 || len(a) == 0 {
		return 0, false
	}
	quad := serials[:4]
	central := 0
	found := false
	for _, candidate := range quad {
		neighbors := a[candidate]
		ok := true
		for _, other := range quad {
			if other == candidate {
				continue
			}
			if !neighbors[other] {
				ok = false
				break
			}
		}
		if ok && (!found || candidate < central) {
			central = candidate
			found = true
		}
	}
	return central, found
}

// IsImproperRecord reports whether every non-central member of the
// record is bonded to the central atom.
func (a Adjacency) IsImproperRecord(central int, record []int) bool {
	if len(a) == 0 {
		return false
	}
	neighbors := a[central]
	for _, other := range record {
		if other == central {
			continue
		}
		if !neighbors[other] {
			return false
		}
	}
	return true
}

// OrderImproper arranges an improper selection as central atom first,
// remaining serials ascending.
func OrderImproper(central int, serials []int) []int {
	var others []int
	for _, s := range serials {
		if s != central {
			others = append(others, s)
		}
	}
	sort.Ints(others)
	return append([]int{central}, others...)
}
