package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// Comparison is a validated single-column predicate.
//
// Cells and the literal are compared as numbers when both parse as floats,
// otherwise as raw strings. The string fallback means "10" < "9" whenever one
// side is not numeric; that is intentional and kept for compatibility.
type Comparison struct {
	column   string
	operator Operator
	literal  string
}

// NewComparison validates the column name and operator and returns a Comparison.
func NewComparison(column string, op Operator, literal string) (*Comparison, error) {
	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}
	if err := ValidateOperator(op); err != nil {
		return nil, err
	}
	return &Comparison{column: column, operator: op, literal: literal}, nil
}

// NewComparisonFromCondition builds a Comparison from a parsed condition
func NewComparisonFromCondition(c Condition) (*Comparison, error) {
	return NewComparison(c.Column, c.Operator, c.Value)
}

// Column returns the compared column
func (c *Comparison) Column() string { return c.column }

// String renders the comparison the way it is written on the command line
func (c *Comparison) String() string {
	return c.column + string(c.operator) + c.literal
}

// Match reports whether row satisfies the comparison.
func (c *Comparison) Match(row table.Row) (bool, error) {
	cell, err := row.Get(c.column)
	if err != nil {
		return false, err
	}

	cellNum, cellIsNum := parseNumber(cell)
	litNum, litIsNum := parseNumber(c.literal)
	if cellIsNum && litIsNum {
		return compareNumbers(cellNum, c.operator, litNum)
	}
	return compareStrings(cell, c.operator, c.literal)
}

// parseNumber parses s as a float, ignoring surrounding whitespace
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator Operator, right float64) (bool, error) {
	switch operator {
	case OpEqual:
		return left == right, nil
	case OpLess:
		return left < right, nil
	case OpGreater:
		return left > right, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(operator))
	}
}

// compareStrings compares two strings (case-sensitive)
func compareStrings(left string, operator Operator, right string) (bool, error) {
	switch operator {
	case OpEqual:
		return left == right, nil
	case OpLess:
		return left < right, nil
	case OpGreater:
		return left > right, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(operator))
	}
}

// FilterCommand keeps the rows matching a Comparison, preserving their order.
type FilterCommand struct {
	cmp *Comparison
}

// NewFilterCommand creates a filter stage
func NewFilterCommand(cmp *Comparison) *FilterCommand {
	return &FilterCommand{cmp: cmp}
}

// Name returns the stage name
func (f *FilterCommand) Name() string { return "where " + f.cmp.String() }

// Execute applies the filter to rows
func (f *FilterCommand) Execute(rows []table.Row) ([]table.Row, error) {
	filtered := make([]table.Row, 0, len(rows))
	for i, row := range rows {
		match, err := f.cmp.Match(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if match {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}
