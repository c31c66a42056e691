package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/table"
)

// TableFormatter renders rows as a bordered grid with a header row
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes rows as a grid. Headers are printed exactly as given and
// every row is separated by a line.
func (f *TableFormatter) Format(columns []string, rows []table.Row) error {
	columns = resolveColumns(columns, rows)
	if len(columns) == 0 {
		return nil
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetRowLine(true)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row[col]
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}
