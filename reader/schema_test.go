package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegasq/csvcat/table"
)

func TestDescribeColumns(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"brand", "price", "rating", "notes"},
		Rows: []table.Row{
			{"brand": "A", "price": "100", "rating": "", "notes": ""},
			{"brand": "B", "price": "2e2", "rating": "4.5", "notes": ""},
			{"brand": "C", "price": " 300 ", "rating": "n/a", "notes": ""},
		},
	}

	assert.Equal(t, []ColumnInfo{
		{Name: "brand", Type: TypeText, NonEmpty: 3, Empty: 0},
		{Name: "price", Type: TypeNumber, NonEmpty: 3, Empty: 0},
		{Name: "rating", Type: TypeText, NonEmpty: 2, Empty: 1},
		{Name: "notes", Type: TypeEmpty, NonEmpty: 0, Empty: 3},
	}, DescribeColumns(tbl))
}

func TestDescribeColumns_DerivesColumns(t *testing.T) {
	tbl := &table.Table{Rows: []table.Row{{"b": "1", "a": "x"}}}

	infos := DescribeColumns(tbl)
	assert.Len(t, infos, 2)
	assert.Equal(t, "a", infos[0].Name)
	assert.Equal(t, TypeText, infos[0].Type)
	assert.Equal(t, "b", infos[1].Name)
	assert.Equal(t, TypeNumber, infos[1].Type)
}

func TestDescribeColumns_TextStaysText(t *testing.T) {
	// A numeric cell after a text cell must not flip the type back
	tbl := &table.Table{
		Columns: []string{"v"},
		Rows:    []table.Row{{"v": "x"}, {"v": "1"}},
	}
	assert.Equal(t, TypeText, DescribeColumns(tbl)[0].Type)
}

func TestSchemaRows(t *testing.T) {
	columns, rows := SchemaRows([]ColumnInfo{{Name: "price", Type: TypeNumber, NonEmpty: 4, Empty: 1}})

	assert.Equal(t, []string{"name", "type", "non_empty", "empty"}, columns)
	assert.Equal(t, []table.Row{{"name": "price", "type": "number", "non_empty": "4", "empty": "1"}}, rows)
}
