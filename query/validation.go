package query

import (
	"errors"
	"fmt"
	"strings"
)

// MaxColumnNameLength is the maximum length for a column name.
const MaxColumnNameLength = 256

var (
	// ErrUnsupportedOperator is returned for comparison operators outside {>, <, =}
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrUnknownAggregation is returned when an aggregation name is not registered
	ErrUnknownAggregation = errors.New("unknown aggregation")

	// ErrInvalidNumericValue is returned when a non-empty cell cannot be parsed as a number
	ErrInvalidNumericValue = errors.New("invalid numeric value")

	// ErrInvalidFormat is returned when a command-line token is malformed
	ErrInvalidFormat = errors.New("invalid format")

	// ErrEmptyColumnName is returned when a column name is empty
	ErrEmptyColumnName = errors.New("column name cannot be empty")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateColumnName validates column name presence and length
func ValidateColumnName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyColumnName
	}
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// ValidateOperator checks that op is one of the supported comparison operators
func ValidateOperator(op Operator) error {
	switch op {
	case OpGreater, OpLess, OpEqual:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(op))
	}
}
