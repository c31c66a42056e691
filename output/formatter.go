package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// ErrUnsupportedFormat is returned by New for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert rows to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format. columns fixes the
	// column order; when nil the sorted union of row keys is used.
	Format(columns []string, rows []table.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the accepted format names
var Formats = []string{"table", "csv", "json", "jsonl"}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "table", "":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, name, strings.Join(Formats, ", "))
	}
}

// resolveColumns returns columns or, when nil, the sorted union of row keys
func resolveColumns(columns []string, rows []table.Row) []string {
	if columns != nil {
		return columns
	}
	return table.SortedColumnNames(rows)
}
