package reader

import (
	"strconv"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// Column types reported by DescribeColumns
const (
	TypeNumber = "number"
	TypeText   = "text"
	TypeEmpty  = "empty"
)

// ColumnInfo summarises one column of a loaded table.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	NonEmpty int    `json:"non_empty"`
	Empty    int    `json:"empty"`
}

// DescribeColumns infers a type for each column in header order.
//
// A column is "number" when every non-empty cell parses as a float, "text"
// when at least one does not, and "empty" when it has no non-empty cells.
// Rows lacking a column count as empty for it.
func DescribeColumns(t *table.Table) []ColumnInfo {
	columns := t.Columns
	if len(columns) == 0 {
		columns = table.GetColumnNames(t.Rows)
	}

	infos := make([]ColumnInfo, 0, len(columns))
	for _, col := range columns {
		info := ColumnInfo{Name: col, Type: TypeEmpty}
		for _, row := range t.Rows {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				info.Empty++
				continue
			}
			info.NonEmpty++
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				info.Type = TypeText
			} else if info.Type == TypeEmpty {
				info.Type = TypeNumber
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// SchemaRows converts column descriptions to rows for the output formatters
func SchemaRows(infos []ColumnInfo) ([]string, []table.Row) {
	columns := []string{"name", "type", "non_empty", "empty"}
	rows := make([]table.Row, len(infos))
	for i, info := range infos {
		rows[i] = table.Row{
			"name":      info.Name,
			"type":      info.Type,
			"non_empty": strconv.Itoa(info.NonEmpty),
			"empty":     strconv.Itoa(info.Empty),
		}
	}
	return columns, rows
}
