package parm

// PointerNames lists the POINTERS counters in file order. The 32nd
// value (NCOPY) is optional.
var PointerNames = []string{
	"NATOM", "NTYPES", "NBONH", "MBONA", "NTHETH", "MTHETA", "NPHIH",
	"MPHIA", "NHPARM", "NPARM", "NNB", "NRES", "NBONA", "NTHETA",
	"NPHIA", "NUMBND", "NUMANG", "NPTRA", "NATYP", "NPHB", "IFPERT",
	"NBPER", "NGPER", "NDPER", "MBPER", "MGPER", "MDPER", "IFBOX",
	"NMXRS", "IFCAP", "NUMEXTRA", "NCOPY",
}

// PointerSet is the decoded POINTERS section: the single source of
// truth for every other section's expected token count.
type PointerSet struct {
	values map[string]int
}

// ParsePointers decodes the POINTERS section into exactly 31 or 32
// named non-negative integers.
func ParsePointers(section *Section) (*PointerSet, error) {
	if section == nil || len(section.Tokens) == 0 {
		return nil, FormatErrorf("POINTERS section missing")
	}
	n := len(section.Tokens)
	if n != 31 && n != 32 {
		return nil, FormatErrorf(
			"POINTERS section length %d does not match expected 31 or 32 values", n)
	}
	values := make(map[string]int, n)
	for i, tok := range section.Tokens {
		v := ParseInt(tok)
		if v < 0 {
			return nil, FormatErrorf("POINTERS %s value %d is negative", PointerNames[i], v)
		}
		values[PointerNames[i]] = v
	}
	return &PointerSet{values: values}, nil
}

// Get returns the named counter, or zero when absent (NCOPY on 31-value
// files).
func (p *PointerSet) Get(name string) int {
	if p == nil {
		return 0
	}
	return p.values[name]
}

// Named accessors for the counters the derived tables consume.

func (p *PointerSet) NAtom() int   { return p.Get("NATOM") }
func (p *PointerSet) NTypes() int  { return p.Get("NTYPES") }
func (p *PointerSet) NBonH() int   { return p.Get("NBONH") }
func (p *PointerSet) MBonA() int   { return p.Get("MBONA") }
func (p *PointerSet) NTheTH() int  { return p.Get("NTHETH") }
func (p *PointerSet) MTheta() int  { return p.Get("MTHETA") }
func (p *PointerSet) NPhiH() int   { return p.Get("NPHIH") }
func (p *PointerSet) MPhiA() int   { return p.Get("MPHIA") }
func (p *PointerSet) NRes() int    { return p.Get("NRES") }
func (p *PointerSet) NumBnd() int  { return p.Get("NUMBND") }
func (p *PointerSet) NumAng() int  { return p.Get("NUMANG") }
func (p *PointerSet) NPtra() int   { return p.Get("NPTRA") }
func (p *PointerSet) NPhb() int    { return p.Get("NPHB") }

// Map returns a copy of the decoded counters for display.
func (p *PointerSet) Map() map[string]int {
	out := make(map[string]int, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}
