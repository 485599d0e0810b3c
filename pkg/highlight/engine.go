package highlight

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/records"
)

// AtomRef carries the per-atom facts the engine needs: the positive
// type index (0 when unknown) and the 1-based residue index.
type AtomRef struct {
	TypeIndex    int
	ResidueIndex int
}

// Engine resolves highlight spans and interaction payloads against a
// tokenized file. Safe for concurrent use after construction.
type Engine struct {
	cache *parm.ValueCache
	atoms map[int]AtomRef

	adjOnce sync.Once
	adj     records.Adjacency
}

// NewEngine wraps a value cache and the per-serial atom references.
func NewEngine(cache *parm.ValueCache, atoms map[int]AtomRef) *Engine {
	return &Engine{cache: cache, atoms: atoms}
}

// ParseMode validates a mode string. Empty input defaults to Atom.
func ParseMode(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ModeAtom, nil
	}
	for _, m := range Modes {
		if string(m) == trimmed {
			return m, nil
		}
	}
	return "", parm.NewError(parm.CodeInvalidInput, "unknown highlight mode "+strconv.Quote(s))
}

// Highlight computes the raw-file spans for a selection plus the
// decoded interaction payload for the mode. Spans are deduplicated by
// (line, start, end) in insertion order. Unknown serials produce a
// not_found error listing every missing one.
func (e *Engine) Highlight(serials []int, mode Mode) ([]Span, Interaction, error) {
	if len(serials) == 0 {
		return nil, nil, nil
	}
	c := newCollector()
	var missing []string
	for _, serial := range serials {
		ref, ok := e.atoms[serial]
		if !ok {
			missing = append(missing, strconv.Itoa(serial))
			continue
		}
		e.atomSpans(c, serial, ref)
	}
	if len(missing) > 0 {
		return nil, nil, parm.NotFoundf("Atom serial(s) %s not found", strings.Join(missing, ", "))
	}

	var interaction Interaction
	switch mode {
	case ModeAtom, "":
		for _, serial := range serials {
			e.highlightAtomLJ(c, serial)
		}
	case ModeBond:
		e.highlightBondEntries(c, serials)
		interaction = &BondInteraction{Mode: ModeBond, Bonds: e.extractBondParams(serials)}
	case ModeAngle:
		e.highlightAngleEntries(c, serials)
		interaction = &AngleInteraction{Mode: ModeAngle, Angles: e.extractAngleParams(serials)}
	case ModeDihedral:
		e.highlightDihedralEntries(c, serials)
		interaction = &DihedralInteraction{Mode: ModeDihedral, Dihedrals: e.extractDihedralParams(serials)}
	case ModeImproper:
		e.highlightImproperEntries(c, serials)
		interaction = &DihedralInteraction{Mode: ModeImproper, Dihedrals: e.extractImproperParams(serials)}
	case ModeOneFour:
		oneFour := e.extract14Params(serials)
		var pairs [][]int
		for _, term := range oneFour {
			pairs = append(pairs, term.Serials)
		}
		e.highlight14Pairs(c, serials)
		e.highlightNonbondedPair(c, serials, pairs)
		nbSerials := serials
		if len(pairs) > 0 {
			nbSerials = pairs[0]
		}
		interaction = &OneFourInteraction{
			Mode:      ModeOneFour,
			OneFour:   oneFour,
			Nonbonded: e.extractNonbondedParams(nbSerials),
		}
	case ModeNonbonded:
		e.highlightNonbondedPair(c, serials, nil)
		interaction = &NonbondedInteraction{Mode: ModeNonbonded, Nonbonded: e.extractNonbondedParams(serials)}
	}
	return c.spans, interaction, nil
}

var perAtomSections = []string{
	"ATOM_NAME",
	"CHARGE",
	"ATOMIC_NUMBER",
	"MASS",
	"ATOM_TYPE_INDEX",
	"AMBER_ATOM_TYPE",
}

var residueSections = []string{"RESIDUE_LABEL", "RESIDUE_POINTER"}

// atomSpans adds the per-atom token of each scalar section plus the
// owning residue's label and pointer tokens.
func (e *Engine) atomSpans(c *collector, serial int, ref AtomRef) {
	for _, name := range perAtomSections {
		c.addToken(e.section(name), serial-1)
	}
	for _, name := range residueSections {
		c.addToken(e.section(name), ref.ResidueIndex-1)
	}
}

func (e *Engine) section(name string) *parm.Section {
	return e.cache.File().Section(name)
}

func (e *Engine) typeIndex(serial int) int {
	return e.atoms[serial].TypeIndex
}

func (e *Engine) adjacency() records.Adjacency {
	e.adjOnce.Do(func() {
		e.adj = records.BuildAdjacencyLoose(e.cache)
	})
	return e.adj
}

// paramValue decodes the 1-based parameter from a float section. Nil
// when the section is absent or the index is out of range.
func (e *Engine) paramValue(name string, paramIndex int) *float64 {
	if paramIndex <= 0 {
		return nil
	}
	values := e.cache.Floats(name)
	if paramIndex > len(values) {
		return nil
	}
	v := values[paramIndex-1]
	return &v
}

// ntypes recovers the atom-type count from the nonbonded index matrix
// length, falling back to the triangular inverse of the LJ A
// coefficient token count when the matrix is not a perfect square.
func (e *Engine) ntypes(values []int) int {
	if len(values) == 0 {
		return 0
	}
	n := int(math.Sqrt(float64(len(values))))
	if n > 0 && n*n == len(values) {
		return n
	}
	acoef := e.section("LENNARD_JONES_ACOEF")
	if acoef == nil || len(acoef.Tokens) == 0 {
		return 0
	}
	count := len(acoef.Tokens)
	estimate := int((math.Sqrt(float64(8*count+1)) - 1) / 2)
	if estimate > 0 && estimate*(estimate+1)/2 == count {
		return estimate
	}
	return 0
}

// nonbondIndex resolves one cell of the ntypes square matrix, returning
// the flat token index and its value.
func nonbondIndex(values []int, ntypes, typeA, typeB int) (int, int, bool) {
	idx := (typeA-1)*ntypes + (typeB - 1)
	if idx < 0 || idx >= len(values) {
		return 0, 0, false
	}
	return idx, values[idx], true
}

// highlightAtomLJ adds the diagonal Lennard-Jones (or 10-12 hydrogen
// bond) coefficient token for a single atom's type.
func (e *Engine) highlightAtomLJ(c *collector, serial int) {
	typeIndex := e.typeIndex(serial)
	if typeIndex <= 0 {
		return
	}
	values := e.cache.Ints("NONBONDED_PARM_INDEX")
	ntypes := e.ntypes(values)
	if ntypes == 0 {
		return
	}
	idx := (typeIndex-1)*ntypes + (typeIndex - 1)
	if idx < 0 || idx >= len(values) {
		return
	}
	nbIndex := values[idx]
	switch {
	case nbIndex > 0:
		e.addParam(c, "LENNARD_JONES_ACOEF", nbIndex)
	case nbIndex < 0:
		e.addParam(c, "HBOND_ACOEF", -nbIndex)
	}
}

func (e *Engine) addParam(c *collector, sectionName string, paramIndex int) {
	if paramIndex <= 0 {
		return
	}
	c.addToken(e.section(sectionName), paramIndex-1)
}

func (e *Engine) highlightBondEntries(c *collector, serials []int) {
	if len(serials) < 2 {
		return
	}
	for _, name := range records.BondSectionNames {
		section := e.section(name)
		values := e.cache.Ints(name)
		for idx := 0; idx+2 < len(values); idx += 3 {
			atomA := records.SerialFromPointer(values[idx])
			atomB := records.SerialFromPointer(values[idx+1])
			if !samePair(atomA, atomB, serials[0], serials[1]) {
				continue
			}
			c.addToken(section, idx)
			c.addToken(section, idx+1)
			c.addToken(section, idx+2)
			paramIndex := abs(values[idx+2])
			e.addParam(c, "BOND_FORCE_CONSTANT", paramIndex)
			e.addParam(c, "BOND_EQUIL_VALUE", paramIndex)
		}
	}
}

func (e *Engine) extractBondParams(serials []int) []BondTerm {
	if len(serials) < 2 {
		return nil
	}
	var results []BondTerm
	for _, name := range records.BondSectionNames {
		values := e.cache.Ints(name)
		for idx := 0; idx+2 < len(values); idx += 3 {
			atomA := records.SerialFromPointer(values[idx])
			atomB := records.SerialFromPointer(values[idx+1])
			if !samePair(atomA, atomB, serials[0], serials[1]) {
				continue
			}
			paramIndex := abs(values[idx+2])
			results = append(results, BondTerm{
				Serials:       []int{atomA, atomB},
				ParamIndex:    paramIndex,
				TypeIndices:   e.typePair(atomA, atomB),
				ForceConstant: e.paramValue("BOND_FORCE_CONSTANT", paramIndex),
				EquilValue:    e.paramValue("BOND_EQUIL_VALUE", paramIndex),
			})
		}
	}
	return results
}

func (e *Engine) highlightAngleEntries(c *collector, serials []int) {
	if len(serials) < 3 {
		return
	}
	matched := e.walkAngles(c, serials, records.MatchTriplet)
	if !matched {
		e.walkAngles(c, serials, records.MatchTripletUnordered)
	}
}

func (e *Engine) walkAngles(c *collector, serials []int, match func(a, b, cc int, serials []int) bool) bool {
	found := false
	for _, name := range records.AngleSectionNames {
		section := e.section(name)
		values := e.cache.Ints(name)
		for idx := 0; idx+3 < len(values); idx += 4 {
			atomA := records.SerialFromPointer(values[idx])
			atomB := records.SerialFromPointer(values[idx+1])
			atomC := records.SerialFromPointer(values[idx+2])
			if !match(atomA, atomB, atomC, serials) {
				continue
			}
			found = true
			for off := 0; off < 4; off++ {
				c.addToken(section, idx+off)
			}
			paramIndex := abs(values[idx+3])
			e.addParam(c, "ANGLE_FORCE_CONSTANT", paramIndex)
			e.addParam(c, "ANGLE_EQUIL_VALUE", paramIndex)
		}
	}
	return found
}

func (e *Engine) extractAngleParams(serials []int) []AngleTerm {
	if len(serials) < 3 {
		return nil
	}
	results := e.collectAngles(serials, records.MatchTriplet)
	if len(results) > 0 {
		return results
	}
	return e.collectAngles(serials, records.MatchTripletUnordered)
}

func (e *Engine) collectAngles(serials []int, match func(a, b, c int, serials []int) bool) []AngleTerm {
	var results []AngleTerm
	for _, name := range records.AngleSectionNames {
		values := e.cache.Ints(name)
		for idx := 0; idx+3 < len(values); idx += 4 {
			atomA := records.SerialFromPointer(values[idx])
			atomB := records.SerialFromPointer(values[idx+1])
			atomC := records.SerialFromPointer(values[idx+2])
			if !match(atomA, atomB, atomC, serials) {
				continue
			}
			paramIndex := abs(values[idx+3])
			results = append(results, AngleTerm{
				Serials:       []int{atomA, atomB, atomC},
				ParamIndex:    paramIndex,
				TypeIndices:   e.typeTriplet(atomA, atomB, atomC),
				ForceConstant: e.paramValue("ANGLE_FORCE_CONSTANT", paramIndex),
				EquilValue:    e.paramValue("ANGLE_EQUIL_VALUE", paramIndex),
			})
		}
	}
	return results
}

var dihedralParamSections = []string{
	"DIHEDRAL_FORCE_CONSTANT",
	"DIHEDRAL_PERIODICITY",
	"DIHEDRAL_PHASE",
	"SCEE_SCALE_FACTOR",
	"SCNB_SCALE_FACTOR",
}

func (e *Engine) highlightDihedralEntries(c *collector, serials []int) {
	if len(serials) < 4 {
		return
	}
	matched := e.walkDihedrals(c, serials, records.MatchQuad)
	if !matched {
		e.walkDihedrals(c, serials, records.MatchQuadUnordered)
	}
}

func (e *Engine) walkDihedrals(c *collector, serials []int, match func(a, b, cc, d int, serials []int) bool) bool {
	found := false
	for _, name := range records.DihedralSectionNames {
		section := e.section(name)
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			atomI := records.SerialFromPointer(values[idx])
			atomJ := records.SerialFromPointer(values[idx+1])
			atomK := records.SerialFromPointer(values[idx+2])
			atomL := records.SerialFromPointer(values[idx+3])
			if !match(atomI, atomJ, atomK, atomL, serials) {
				continue
			}
			found = true
			for off := 0; off < 5; off++ {
				c.addToken(section, idx+off)
			}
			paramIndex := abs(values[idx+4])
			for _, paramSection := range dihedralParamSections {
				e.addParam(c, paramSection, paramIndex)
			}
		}
	}
	return found
}

func (e *Engine) extractDihedralParams(serials []int) []DihedralTerm {
	if len(serials) < 4 {
		return nil
	}
	results := e.collectDihedrals(serials, records.MatchQuad)
	if len(results) > 0 {
		return results
	}
	return e.collectDihedrals(serials, records.MatchQuadUnordered)
}

func (e *Engine) collectDihedrals(serials []int, match func(a, b, c, d int, serials []int) bool) []DihedralTerm {
	var results []DihedralTerm
	for _, name := range records.DihedralSectionNames {
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			atomI := records.SerialFromPointer(values[idx])
			atomJ := records.SerialFromPointer(values[idx+1])
			atomK := records.SerialFromPointer(values[idx+2])
			atomL := records.SerialFromPointer(values[idx+3])
			if !match(atomI, atomJ, atomK, atomL, serials) {
				continue
			}
			results = append(results, e.dihedralTerm(
				[]int{atomI, atomJ, atomK, atomL}, abs(values[idx+4])))
		}
	}
	return results
}

func (e *Engine) dihedralTerm(serials []int, paramIndex int) DihedralTerm {
	return DihedralTerm{
		Serials:       serials,
		ParamIndex:    paramIndex,
		ForceConstant: e.paramValue("DIHEDRAL_FORCE_CONSTANT", paramIndex),
		Periodicity:   e.paramValue("DIHEDRAL_PERIODICITY", paramIndex),
		Phase:         e.paramValue("DIHEDRAL_PHASE", paramIndex),
		Scee:          e.paramValue("SCEE_SCALE_FACTOR", paramIndex),
		Scnb:          e.paramValue("SCNB_SCALE_FACTOR", paramIndex),
	}
}

func (e *Engine) highlightImproperEntries(c *collector, serials []int) {
	if len(serials) < 4 {
		return
	}
	adj := e.adjacency()
	central, ok := adj.ImproperCentral(serials)
	if !ok {
		return
	}
	ordered := records.OrderImproper(central, serials[:4])
	for _, name := range records.DihedralSectionNames {
		section := e.section(name)
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			record := []int{
				records.SerialFromPointer(values[idx]),
				records.SerialFromPointer(values[idx+1]),
				records.SerialFromPointer(values[idx+2]),
				records.SerialFromPointer(values[idx+3]),
			}
			if !sameSet(ordered, record) || !adj.IsImproperRecord(central, record) {
				continue
			}
			for off := 0; off < 5; off++ {
				c.addToken(section, idx+off)
			}
			paramIndex := abs(values[idx+4])
			for _, paramSection := range dihedralParamSections {
				e.addParam(c, paramSection, paramIndex)
			}
		}
	}
}

func (e *Engine) extractImproperParams(serials []int) []DihedralTerm {
	if len(serials) < 4 {
		return nil
	}
	adj := e.adjacency()
	central, ok := adj.ImproperCentral(serials)
	if !ok {
		return nil
	}
	ordered := records.OrderImproper(central, serials[:4])
	var results []DihedralTerm
	for _, name := range records.DihedralSectionNames {
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			record := []int{
				records.SerialFromPointer(values[idx]),
				records.SerialFromPointer(values[idx+1]),
				records.SerialFromPointer(values[idx+2]),
				records.SerialFromPointer(values[idx+3]),
			}
			if !sameSet(ordered, record) || !adj.IsImproperRecord(central, record) {
				continue
			}
			results = append(results, e.dihedralTerm(ordered, abs(values[idx+4])))
		}
	}
	return results
}

// highlight14Pairs marks every non-excluded, proper dihedral term whose
// terminal atoms form the selected pair.
func (e *Engine) highlight14Pairs(c *collector, serials []int) {
	if len(serials) < 2 {
		return
	}
	for _, name := range records.DihedralSectionNames {
		section := e.section(name)
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			if values[idx+2] < 0 || values[idx+3] < 0 {
				continue
			}
			atomI := records.SerialFromPointer(values[idx])
			atomL := records.SerialFromPointer(values[idx+3])
			if !samePair(atomI, atomL, serials[0], serials[1]) {
				continue
			}
			for off := 0; off < 5; off++ {
				c.addToken(section, idx+off)
			}
			paramIndex := abs(values[idx+4])
			e.addParam(c, "SCEE_SCALE_FACTOR", paramIndex)
			e.addParam(c, "SCNB_SCALE_FACTOR", paramIndex)
		}
	}
}

func (e *Engine) extract14Params(serials []int) []OneFourTerm {
	if len(serials) < 2 {
		return nil
	}
	var results []OneFourTerm
	for _, name := range records.DihedralSectionNames {
		values := e.cache.Ints(name)
		for idx := 0; idx+4 < len(values); idx += 5 {
			if values[idx+2] < 0 || values[idx+3] < 0 {
				continue
			}
			atomI := records.SerialFromPointer(values[idx])
			atomL := records.SerialFromPointer(values[idx+3])
			if !samePair(atomI, atomL, serials[0], serials[1]) {
				continue
			}
			paramIndex := abs(values[idx+4])
			results = append(results, OneFourTerm{
				Serials:     []int{atomI, atomL},
				ParamIndex:  paramIndex,
				TypeIndices: e.typePair(atomI, atomL),
				Scee:        e.paramValue("SCEE_SCALE_FACTOR", paramIndex),
				Scnb:        e.paramValue("SCNB_SCALE_FACTOR", paramIndex),
			})
		}
	}
	return results
}

// extractNonbondedParams decodes the nonbonded matrix entry for the
// first two serials. Falls back to the transposed cell when the primary
// entry is zero.
func (e *Engine) extractNonbondedParams(serials []int) *NonbondedTerm {
	if len(serials) < 2 {
		return nil
	}
	typeA := e.typeIndex(serials[0])
	typeB := e.typeIndex(serials[1])
	if typeA <= 0 || typeB <= 0 {
		return nil
	}
	values := e.cache.Ints("NONBONDED_PARM_INDEX")
	ntypes := e.ntypes(values)
	if ntypes == 0 {
		return nil
	}
	nbIndex := 0
	if _, nb, ok := nonbondIndex(values, ntypes, typeA, typeB); ok {
		nbIndex = nb
	}
	if nbIndex == 0 {
		if _, nb, ok := nonbondIndex(values, ntypes, typeB, typeA); ok {
			nbIndex = nb
		}
	}
	term := &NonbondedTerm{
		Serials:     []int{serials[0], serials[1]},
		TypeIndices: []int{typeA, typeB},
		NBIndex:     nbIndex,
	}
	if nbIndex > 0 {
		term.ACoef = e.paramValue("LENNARD_JONES_ACOEF", nbIndex)
		term.BCoef = e.paramValue("LENNARD_JONES_BCOEF", nbIndex)
		if term.ACoef != nil && term.BCoef != nil {
			a, b := *term.ACoef, *term.BCoef
			if a != 0 && b != 0 {
				epsilon := (b * b) / (4.0 * a)
				rmin := math.Pow(2.0*a/b, 1.0/6.0)
				term.Epsilon = &epsilon
				term.Rmin = &rmin
			}
		}
	}
	return term
}

// highlightNonbondedPair marks the primary and transposed matrix cells
// for each pair, then the coefficient tokens each cell points at. A
// negative index routes to the 10-12 hydrogen bond sections and the
// HBCUT cutoff.
func (e *Engine) highlightNonbondedPair(c *collector, serials []int, pairs [][]int) {
	if len(serials) < 2 && len(pairs) == 0 {
		return
	}
	section := e.section("NONBONDED_PARM_INDEX")
	values := e.cache.Ints("NONBONDED_PARM_INDEX")
	ntypes := e.ntypes(values)
	if ntypes == 0 {
		return
	}
	if len(pairs) == 0 {
		pairs = [][]int{serials[:2]}
	}
	nbSet := make(map[int]bool)
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		typeA := e.typeIndex(pair[0])
		typeB := e.typeIndex(pair[1])
		if typeA <= 0 || typeB <= 0 {
			continue
		}
		for _, cell := range [][2]int{{typeA, typeB}, {typeB, typeA}} {
			idx, nbIndex, ok := nonbondIndex(values, ntypes, cell[0], cell[1])
			if !ok {
				continue
			}
			c.addToken(section, idx)
			if nbIndex != 0 {
				nbSet[nbIndex] = true
			}
		}
	}
	nbIndices := make([]int, 0, len(nbSet))
	for nb := range nbSet {
		nbIndices = append(nbIndices, nb)
	}
	sort.Ints(nbIndices)
	for _, nbIndex := range nbIndices {
		if nbIndex > 0 {
			e.addParam(c, "LENNARD_JONES_ACOEF", nbIndex)
			e.addParam(c, "LENNARD_JONES_BCOEF", nbIndex)
			continue
		}
		hbIndex := -nbIndex
		e.addParam(c, "HBOND_ACOEF", hbIndex)
		e.addParam(c, "HBOND_BCOEF", hbIndex)
		c.addToken(e.section("HBCUT"), 0)
	}
}

func (e *Engine) typePair(a, b int) []int {
	ta, tb := e.typeIndex(a), e.typeIndex(b)
	if ta == 0 || tb == 0 {
		return nil
	}
	return []int{ta, tb}
}

func (e *Engine) typeTriplet(a, b, c int) []int {
	ta, tb, tc := e.typeIndex(a), e.typeIndex(b), e.typeIndex(c)
	if ta == 0 || tb == 0 || tc == 0 {
		return nil
	}
	return []int{ta, tb, tc}
}

type collector struct {
	spans []Span
	seen  map[[3]int]bool
}

func newCollector() *collector {
	return &collector{seen: make(map[[3]int]bool)}
}

// addToken records the span of one token, skipping absent sections,
// out-of-range indices, and already-seen coordinates.
func (c *collector) addToken(section *parm.Section, tokenIndex int) {
	if section == nil || tokenIndex < 0 || tokenIndex >= len(section.Tokens) {
		return
	}
	token := section.Tokens[tokenIndex]
	key := [3]int{token.Line, token.Start, token.End}
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.spans = append(c.spans, Span{
		Line:    token.Line,
		Start:   token.Start,
		End:     token.End,
		Section: section.Name,
	})
}

func samePair(a, b, x, y int) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// sameSet compares the distinct members of two serial lists.
func sameSet(a, b []int) bool {
	setA := make(map[int]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[int]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if !setB[v] {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
