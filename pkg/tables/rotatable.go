package tables

// rotatableBonds classifies heavy-atom bonds (both masses above 3.1,
// excluding hydrogens) that serve as the central j-k bond of at least
// one dihedral whose two terminal-neighbor sets are disjoint.
func (in *inputs) rotatableBonds() map[[2]int]bool {
	const heavyMass = 3.1

	bonds := make(map[[2]int]bool)
	for _, b := range in.bonds {
		a, c := sortedPair(b.A, b.B)
		bonds[[2]int{a, c}] = true
	}

	heavy := make(map[[2]int]bool)
	for pair := range bonds {
		a, b := pair[0], pair[1]
		if a <= 0 || b <= 0 || a > len(in.masses) || b > len(in.masses) {
			continue
		}
		if in.masses[a-1] > heavyMass && in.masses[b-1] > heavyMass {
			heavy[pair] = true
		}
	}

	central := make(map[[2]int]bool)
	terminalTriplets := make(map[int][][3]int)
	for _, d := range in.dihedrals {
		a, b := sortedPair(d.J, d.K)
		central[[2]int{a, b}] = true
		terminalTriplets[d.I] = append(terminalTriplets[d.I], [3]int{d.J, d.K, d.L})
		terminalTriplets[d.L] = append(terminalTriplets[d.L], [3]int{d.I, d.J, d.K})
	}

	rotatable := make(map[[2]int]bool)
	for pair := range heavy {
		if !central[pair] {
			continue
		}
		atomA, atomB := pair[0], pair[1]
		neighborsA := gatherTerminalNeighbors(terminalTriplets[atomA], atomB)
		neighborsB := gatherTerminalNeighbors(terminalTriplets[atomB], atomA)
		if disjoint(neighborsA, neighborsB) {
			rotatable[pair] = true
		}
	}
	return rotatable
}

// gatherTerminalNeighbors unions the triplets attached to one bond
// end, skipping triplets that contain the opposite bond atom.
func gatherTerminalNeighbors(triplets [][3]int, exclude int) map[int]bool {
	neighbors := make(map[int]bool)
	for _, t := range triplets {
		if t[0] == exclude || t[1] == exclude || t[2] == exclude {
			continue
		}
		neighbors[t[0]] = true
		neighbors[t[1]] = true
		neighbors[t[2]] = true
	}
	return neighbors
}

func disjoint(a, b map[int]bool) bool {
	for v := range a {
		if b[v] {
			return false
		}
	}
	return true
}
