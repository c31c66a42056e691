// Package table defines the in-memory row model shared by the reader,
// the query pipeline and the output formatters.
//
// A Row maps column names to cell text. Cells stay textual until an
// operation needs a number; the reader never interprets them.
package table

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingColumn is returned when a row does not carry a referenced column.
var ErrMissingColumn = errors.New("column not found")

// Row is one record keyed by column name.
type Row map[string]string

// Table is a set of rows together with the column order they were read in.
type Table struct {
	Columns []string
	Rows    []Row
}

// Get returns the cell for column, or ErrMissingColumn if the row lacks it.
func (r Row) Get(column string) (string, error) {
	cell, ok := r[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}
	return cell, nil
}

// GetColumnNames returns all unique column names from rows in first-seen order.
// Keys within a single row are visited in sorted order so the result is
// deterministic.
func GetColumnNames(rows []Row) []string {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	columns := make([]string, 0)

	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for col := range row {
			if !seen[col] {
				keys = append(keys, col)
			}
		}
		sort.Strings(keys)
		for _, col := range keys {
			seen[col] = true
			columns = append(columns, col)
		}
	}

	return columns
}

// SortedColumnNames returns the union of column names across rows, sorted.
func SortedColumnNames(rows []Row) []string {
	columns := GetColumnNames(rows)
	sort.Strings(columns)
	return columns
}

// MergeColumns appends the names in extra that are not yet in columns.
func MergeColumns(columns []string, extra ...string) []string {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		seen[col] = true
	}
	for _, col := range extra {
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}
	return columns
}
