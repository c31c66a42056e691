package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvcat/table"
)

// products is the shared fixture used across the query tests
func products() []table.Row {
	return []table.Row{
		{"brand": "A", "price": "100"},
		{"brand": "B", "price": "200"},
		{"brand": "C", "price": "300"},
		{"brand": "A", "price": "400"},
	}
}

func TestComparisonMatch(t *testing.T) {
	tests := []struct {
		name    string
		op      Operator
		literal string
		cell    string
		want    bool
	}{
		{"numeric greater", OpGreater, "150", "200", true},
		{"numeric greater false", OpGreater, "150", "100", false},
		{"numeric less", OpLess, "150", "100", true},
		{"numeric equal", OpEqual, "100", "100.0", true},
		{"numeric equal with spaces", OpEqual, "100", " 100 ", true},
		{"numeric not lexicographic", OpGreater, "9", "10", true},
		{"string equal", OpEqual, "A", "A", true},
		{"string equal case sensitive", OpEqual, "a", "A", false},
		{"string greater", OpGreater, "apple", "banana", true},
		{"string less", OpLess, "apple", "banana", false},
		{"mixed falls back to string", OpGreater, "9", "10x", false},
		{"mixed literal falls back to string", OpLess, "abc", "10", true},
		{"empty cell compares as string", OpEqual, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := NewComparison("col", tt.op, tt.literal)
			require.NoError(t, err)

			got, err := cmp.Match(table.Row{"col": tt.cell})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparisonMatch_MissingColumn(t *testing.T) {
	cmp, err := NewComparison("rating", OpGreater, "4")
	require.NoError(t, err)

	_, err = cmp.Match(table.Row{"price": "100"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, table.ErrMissingColumn))
}

func TestNewComparison_Validation(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		op      Operator
		wantErr error
	}{
		{"unsupported bang", "price", Operator("!"), ErrUnsupportedOperator},
		{"unsupported ge", "price", Operator(">="), ErrUnsupportedOperator},
		{"empty operator", "price", Operator(""), ErrUnsupportedOperator},
		{"empty column", "", OpEqual, ErrEmptyColumnName},
		{"blank column", "   ", OpEqual, ErrEmptyColumnName},
		{"long column", string(make([]byte, MaxColumnNameLength+1)), OpEqual, ErrColumnNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := NewComparison(tt.column, tt.op, "100")
			require.Error(t, err)
			assert.Nil(t, cmp)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestComparisonMatch_UnsupportedOperatorAtMatchTime(t *testing.T) {
	// Bypasses NewComparison to check the evaluator guards on its own
	cmp := &Comparison{column: "price", operator: Operator("!"), literal: "100"}

	for _, cell := range []string{"100", "abc"} {
		_, err := cmp.Match(table.Row{"price": cell})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOperator))
	}
}

func TestFilterCommand(t *testing.T) {
	t.Run("price greater than 150", func(t *testing.T) {
		cmp, err := NewComparison("price", OpGreater, "150")
		require.NoError(t, err)

		filtered, err := NewFilterCommand(cmp).Execute(products())
		require.NoError(t, err)
		require.Len(t, filtered, 3)
		for _, row := range filtered {
			assert.NotEqual(t, "100", row["price"])
		}
	})

	t.Run("brand equals A keeps order", func(t *testing.T) {
		cmp, err := NewComparison("brand", OpEqual, "A")
		require.NoError(t, err)

		filtered, err := NewFilterCommand(cmp).Execute(products())
		require.NoError(t, err)
		assert.Equal(t, []table.Row{
			{"brand": "A", "price": "100"},
			{"brand": "A", "price": "400"},
		}, filtered)
	})

	t.Run("does not modify input", func(t *testing.T) {
		rows := products()
		cmp, err := NewComparison("brand", OpEqual, "Z")
		require.NoError(t, err)

		filtered, err := NewFilterCommand(cmp).Execute(rows)
		require.NoError(t, err)
		assert.Empty(t, filtered)
		assert.Equal(t, products(), rows)
	})

	t.Run("filtered rows are an ordered subsequence", func(t *testing.T) {
		rows := products()
		cmp, err := NewComparison("price", OpLess, "350")
		require.NoError(t, err)

		filtered, err := NewFilterCommand(cmp).Execute(rows)
		require.NoError(t, err)

		j := 0
		for _, row := range rows {
			if j < len(filtered) && row["brand"] == filtered[j]["brand"] && row["price"] == filtered[j]["price"] {
				j++
			}
		}
		assert.Equal(t, len(filtered), j)
	})

	t.Run("missing column reports row", func(t *testing.T) {
		rows := append(products(), table.Row{"brand": "D"})
		cmp, err := NewComparison("price", OpGreater, "150")
		require.NoError(t, err)

		_, err = NewFilterCommand(cmp).Execute(rows)
		require.Error(t, err)
		assert.True(t, errors.Is(err, table.ErrMissingColumn))
		assert.Contains(t, err.Error(), "row 5")
	})
}
