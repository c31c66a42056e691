package query

import (
	"fmt"
	"sort"

	"github.com/vegasq/csvcat/table"
)

// sortKey is a cell prepared for ordering: numeric when it parses, text otherwise
type sortKey struct {
	num   float64
	text  string
	isNum bool
}

func newSortKey(cell string) sortKey {
	if f, ok := parseNumber(cell); ok {
		return sortKey{num: f, text: cell, isNum: true}
	}
	return sortKey{text: cell}
}

// compareKeys returns -1, 0 or +1. Numeric keys order before text keys.
func compareKeys(a, b sortKey) int {
	switch {
	case a.isNum && b.isNum:
		if a.num < b.num {
			return -1
		}
		if a.num > b.num {
			return 1
		}
		return 0
	case a.isNum:
		return -1
	case b.isNum:
		return 1
	}

	if a.text < b.text {
		return -1
	}
	if a.text > b.text {
		return 1
	}
	return 0
}

// OrderByCommand sorts rows by one column.
type OrderByCommand struct {
	spec OrderSpec
}

// NewOrderByCommand validates the column name and creates a sort stage
func NewOrderByCommand(spec OrderSpec) (*OrderByCommand, error) {
	if err := ValidateColumnName(spec.Column); err != nil {
		return nil, err
	}
	return &OrderByCommand{spec: spec}, nil
}

// Name returns the stage name
func (o *OrderByCommand) Name() string {
	if o.spec.Desc {
		return "order by " + o.spec.Column + " desc"
	}
	return "order by " + o.spec.Column + " asc"
}

// Execute returns a sorted copy of rows. The sort is stable in both
// directions: rows with equal keys keep their input order.
func (o *OrderByCommand) Execute(rows []table.Row) ([]table.Row, error) {
	return ApplyOrderBy(rows, o.spec)
}

// ApplyOrderBy returns rows sorted by spec without modifying the input slice.
func ApplyOrderBy(rows []table.Row, spec OrderSpec) ([]table.Row, error) {
	keys := make([]sortKey, len(rows))
	for i, row := range rows {
		cell, err := row.Get(spec.Column)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		keys[i] = newSortKey(cell)
	}

	// Sort a permutation so keys are parsed once per row
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		cmp := compareKeys(keys[idx[i]], keys[idx[j]])
		if spec.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	sorted := make([]table.Row, len(rows))
	for i, k := range idx {
		sorted[i] = rows[k]
	}
	return sorted, nil
}
