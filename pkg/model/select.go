package model

import (
	"strconv"
	"strings"

	"github.com/yaklabco/topview/pkg/highlight"
	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/selection"
	"github.com/yaklabco/topview/pkg/tables"
)

// Selection is the outcome of resolving one table row to concrete
// atoms: the highlight mode for the row's table, the chosen serials,
// and the cursor position within the total match count.
type Selection struct {
	Mode    highlight.Mode `json:"mode"`
	Serials []int          `json:"serials"`
	Index   int            `json:"index"`
	Total   int            `json:"total"`
}

// Select maps a summary-table row to atom serials. Cursor cycles
// through the matches modulo the total.
func (m *Model) Select(table string, rowIndex, cursor int) (*Selection, error) {
	if table == "" {
		return nil, parm.NewError(parm.CodeInvalidInput, "table is required")
	}
	if rowIndex < 0 || cursor < 0 {
		return nil, parm.NewError(parm.CodeInvalidInput, "row_index and cursor must be >= 0")
	}
	snap, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	data, ok := snap.tables[table]
	if !ok || data == nil {
		return nil, parm.NotFoundf("System info table %q not available", table)
	}
	if rowIndex >= len(data.Rows) {
		return nil, parm.NotFoundf("Row index out of range")
	}
	row := rowValues(data, rowIndex)
	mode := highlight.ModeForTable(table)
	index := snap.index

	switch table {
	case tables.AtomTypes:
		typeIndex, ok := cellInt(row["type_index"])
		if !ok || typeIndex == 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		serials := index.AtomSerialsByType[typeIndex]
		total := len(serials)
		if total == 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		at := cursor % total
		return &Selection{Mode: mode, Serials: []int{serials[at]}, Index: at, Total: total}, nil

	case tables.BondTypes:
		key, ok := bondKeyFromRow(row)
		if !ok {
			return nil, parm.NotFoundf("No matches for row")
		}
		return pairSelection(mode, index.BondsByKey[key], cursor)

	case tables.AngleTypes:
		key, ok := angleKeyFromRow(row)
		if !ok {
			return nil, parm.NotFoundf("No matches for row")
		}
		matches := index.AnglesByKey[key]
		total := len(matches)
		if total == 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		at := cursor % total
		triplet := matches[at]
		return &Selection{Mode: mode, Serials: triplet[:], Index: at, Total: total}, nil

	case tables.DihedralTypes:
		term, ok := cellInt(row["idx"])
		if !ok || term == 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		quad, ok := index.DihedralsByTerm[term]
		if !ok {
			return nil, parm.NotFoundf("No matches for row")
		}
		return &Selection{Mode: mode, Serials: quad[:], Index: 0, Total: 1}, nil

	case tables.OneFourNonbonded:
		key, ok := bondKeyFromRow(row)
		if !ok {
			return nil, parm.NotFoundf("No matches for row")
		}
		return pairSelection(mode, index.OneFourByKey[key], cursor)

	case tables.NonbondedPairs:
		typeA, okA := cellInt(row["type_a"])
		typeB, okB := cellInt(row["type_b"])
		if !okA || !okB || typeA == 0 || typeB == 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		serialsA := index.AtomSerialsByType[typeA]
		serialsB := index.AtomSerialsByType[typeB]
		sameType := typeA == typeB
		total := selection.NonbondedPairTotal(serialsA, serialsB, sameType)
		if total <= 0 {
			return nil, parm.NotFoundf("No matches for row")
		}
		a, b, err := selection.NonbondedPairForCursor(serialsA, serialsB, cursor, sameType)
		if err != nil {
			return nil, err
		}
		return &Selection{Mode: mode, Serials: []int{a, b}, Index: cursor % total, Total: total}, nil
	}
	return nil, parm.NewError(parm.CodeInvalidInput, "Unsupported table "+strconv.Quote(table))
}

func pairSelection(mode highlight.Mode, matches [][2]int, cursor int) (*Selection, error) {
	total := len(matches)
	if total == 0 {
		return nil, parm.NotFoundf("No matches for row")
	}
	at := cursor % total
	pair := matches[at]
	return &Selection{Mode: mode, Serials: pair[:], Index: at, Total: total}, nil
}

// rowValues maps a row's cells by column name.
func rowValues(table *tables.Table, rowIndex int) map[string]any {
	row := table.Rows[rowIndex]
	values := make(map[string]any, len(table.Columns))
	for i, column := range table.Columns {
		if i < len(row) {
			values[column] = row[i]
		}
	}
	return values
}

func cellInt(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func bondKeyFromRow(row map[string]any) (selection.BondKey, bool) {
	typeA, okA := cellInt(row["type_a"])
	typeB, okB := cellInt(row["type_b"])
	param, okP := cellInt(row["param_index"])
	if !okA || !okB || !okP || typeA == 0 || typeB == 0 {
		return selection.BondKey{}, false
	}
	if typeA > typeB {
		typeA, typeB = typeB, typeA
	}
	return selection.BondKey{TypeA: typeA, TypeB: typeB, Param: param}, true
}

func angleKeyFromRow(row map[string]any) (selection.AngleKey, bool) {
	typeI, okI := cellInt(row["type_i"])
	typeJ, okJ := cellInt(row["type_j"])
	typeK, okK := cellInt(row["type_k"])
	param, okP := cellInt(row["param_index"])
	if !okI || !okJ || !okK || !okP || typeI == 0 || typeJ == 0 || typeK == 0 {
		return selection.AngleKey{}, false
	}
	if typeI > typeK {
		typeI, typeK = typeK, typeI
	}
	return selection.AngleKey{TypeI: typeI, TypeJ: typeJ, TypeK: typeK, Param: param}, true
}
