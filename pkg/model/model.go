// Package model owns the loaded-system state: it parses topology text
// into an immutable snapshot and serves section listings, summary
// tables, highlights, atom bundles, and table-row selections from it.
package model

import (
	"context"
	"sort"
	"sync"

	"github.com/yaklabco/topview/pkg/highlight"
	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/tables"
)

// Model is the concurrency-safe state store. A load replaces the
// snapshot atomically; a failed load leaves the previous one in place.
type Model struct {
	mu   sync.RWMutex
	snap *snapshot
}

// New creates an empty model.
func New() *Model {
	return &Model{}
}

// LoadResult reports what a successful load produced.
type LoadResult struct {
	Source    string `json:"source"`
	NAtoms    int    `json:"natoms"`
	NResidues int    `json:"nresidues"`
	NSections int    `json:"nsections"`
}

// Load parses topology text and swaps it in as the current system.
// Source is a label for reporting (usually the file path).
func (m *Model) Load(ctx context.Context, source, text string) (*LoadResult, error) {
	snap, err := buildSnapshot(ctx, source, text)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.snap = snap
	m.mu.Unlock()
	return &LoadResult{
		Source:    snap.source,
		NAtoms:    len(snap.atoms),
		NResidues: snap.nresidues(),
		NSections: len(snap.file.Order),
	}, nil
}

func (m *Model) snapshot() (*snapshot, error) {
	m.mu.RLock()
	snap := m.snap
	m.mu.RUnlock()
	if snap == nil {
		return nil, parm.NewError(parm.CodeNotLoaded, "No system loaded")
	}
	return snap, nil
}

// Lines returns the raw lines of the loaded text, for span rendering.
func (m *Model) Lines() ([]string, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.file.Lines, nil
}

// Sections lists every %FLAG section in file order with reference
// metadata.
func (m *Model) Sections() ([]SectionInfo, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	infos := make([]SectionInfo, 0, len(snap.file.Order))
	for _, name := range snap.file.Order {
		section := snap.file.Sections[name]
		infos = append(infos, SectionInfo{
			Name:        section.Name,
			Line:        section.FlagLine,
			EndLine:     section.EndLine,
			Description: describeSection(section.Name),
			Deprecated:  deprecatedFlags[section.Name],
		})
	}
	sort.SliceStable(infos, func(i, j int) bool { return infos[i].Line < infos[j].Line })
	return infos, nil
}

// Tables returns the seven derived summary tables.
func (m *Model) Tables() (map[string]*tables.Table, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.tables, nil
}

// Table returns one summary table by name.
func (m *Model) Table(name string) (*tables.Table, error) {
	all, err := m.Tables()
	if err != nil {
		return nil, err
	}
	table, ok := all[name]
	if !ok {
		return nil, parm.NotFoundf("System info table %q not available", name)
	}
	return table, nil
}

// Highlight resolves spans and interaction data for selected serials.
func (m *Model) Highlight(serials []int, mode highlight.Mode) ([]highlight.Span, highlight.Interaction, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, nil, err
	}
	return snap.engine.Highlight(serials, mode)
}

// Atom returns one atom's metadata plus its base highlight spans.
func (m *Model) Atom(serial int) (*AtomMeta, []highlight.Span, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, nil, err
	}
	meta, ok := snap.bySerial[serial]
	if !ok {
		return nil, nil, parm.NotFoundf("Atom serial %d not found", serial)
	}
	spans, _, err := snap.engine.Highlight([]int{serial}, highlight.ModeAtom)
	if err != nil {
		return nil, nil, err
	}
	return &meta, spans, nil
}

// Atoms returns the full atom metadata list in serial order.
func (m *Model) Atoms() ([]AtomMeta, error) {
	snap, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.atoms, nil
}
