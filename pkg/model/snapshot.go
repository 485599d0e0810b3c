package model

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/topview/pkg/highlight"
	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/selection"
	"github.com/yaklabco/topview/pkg/tables"
)

// snapshot is the immutable state of one successful load. The model
// swaps whole snapshots; readers never see a partially built one.
type snapshot struct {
	source   string
	file     *parm.File
	pointers *parm.PointerSet
	cache    *parm.ValueCache
	atoms    []AtomMeta
	bySerial map[int]AtomMeta
	engine   *highlight.Engine
	tables   map[string]*tables.Table
	index    *selection.Index
}

// buildSnapshot parses the text and derives every view up front, so a
// load either yields a fully queryable snapshot or an error. The
// summary tables and the selection index build concurrently.
func buildSnapshot(ctx context.Context, source, text string) (*snapshot, error) {
	file := parm.Parse(text)
	pointers, err := parm.ParsePointers(file.Section("POINTERS"))
	if err != nil {
		return nil, err
	}
	cache := parm.NewValueCache(file)
	atoms, err := buildAtoms(cache, pointers)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		source:   source,
		file:     file,
		pointers: pointers,
		cache:    cache,
		atoms:    atoms,
		bySerial: make(map[int]AtomMeta, len(atoms)),
	}
	refs := make(map[int]highlight.AtomRef, len(atoms))
	for _, atom := range atoms {
		snap.bySerial[atom.Serial] = atom
		refs[atom.Serial] = highlight.AtomRef{
			TypeIndex:    atom.TypeIndex,
			ResidueIndex: atom.ResidueIndex,
		}
	}
	snap.engine = highlight.NewEngine(cache, refs)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		built, err := tables.Build(file, pointers)
		if err != nil {
			return err
		}
		snap.tables = built
		return nil
	})
	g.Go(func() error {
		index, err := selection.Build(file, pointers)
		if err != nil {
			return err
		}
		snap.index = index
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *snapshot) nresidues() int {
	section := s.file.Section("RESIDUE_POINTER")
	if section == nil {
		return 0
	}
	return len(section.Tokens)
}
