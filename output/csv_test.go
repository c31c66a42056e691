package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvcat/table"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		columns   []string
		rows      []table.Row
		wantLines int
	}{
		{
			name:      "empty rows without columns",
			rows:      []table.Row{},
			wantLines: 0,
		},
		{
			name:      "empty rows with columns writes header",
			columns:   []string{"brand", "price"},
			rows:      []table.Row{},
			wantLines: 1,
		},
		{
			name:      "single row",
			columns:   []string{"brand", "price"},
			rows:      []table.Row{{"brand": "A", "price": "100"}},
			wantLines: 2, // header + 1 data row
		},
		{
			name: "multiple rows",
			rows: []table.Row{
				{"brand": "A", "price": "100"},
				{"brand": "B", "price": "200"},
			},
			wantLines: 3, // header + 2 data rows
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVFormatter(&buf).Format(tt.columns, tt.rows))

			if tt.wantLines == 0 {
				assert.Empty(t, buf.String())
				return
			}

			// Parse CSV to verify format
			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			require.NoError(t, err)
			assert.Len(t, records, tt.wantLines)
		})
	}
}

func TestCSVFormatter_ColumnOrder(t *testing.T) {
	rows := []table.Row{{"z_last": "1", "a_first": "2", "m_middle": "3"}}

	t.Run("explicit order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCSVFormatter(&buf).Format([]string{"z_last", "a_first", "m_middle"}, rows))
		assert.Equal(t, "z_last,a_first,m_middle\n1,2,3\n", buf.String())
	})

	t.Run("derived order is sorted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCSVFormatter(&buf).Format(nil, rows))
		assert.Equal(t, "a_first,m_middle,z_last\n2,3,1\n", buf.String())
	})
}

func TestCSVFormatter_SparseRows(t *testing.T) {
	rows := []table.Row{{"a": "1"}, {"b": "2"}}

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(nil, rows))
	assert.Equal(t, "a,b\n1,\n,2\n", buf.String())
}

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"@cmd", "'@cmd"},
		{"-cmd|' /C calc'!A0", "'-cmd|'' /C calc''!A0"},
		{"-12.5", "-12.5"},
		{"|pipe", "'|pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeCell(tt.in))
		})
	}
}

// errWriter fails every write
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCSVFormatter_WriteError(t *testing.T) {
	err := NewCSVFormatter(errWriter{}).Format([]string{"a"}, []table.Row{{"a": "1"}})
	require.Error(t, err)
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	f := NewCSVFormatter(&first)
	f.SetOutput(&second)

	require.NoError(t, f.Format([]string{"a"}, []table.Row{{"a": "1"}}))
	assert.Empty(t, first.String())
	assert.Equal(t, "a\n1\n", second.String())
}
