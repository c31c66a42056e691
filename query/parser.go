package query

import (
	"fmt"
	"strings"
)

// ParseCondition parses a filter token of the form COLUMN{>,<,=}VALUE.
//
// The operator is the first operator character that follows at least one
// column character and is itself followed by at least one character, so
// "a>=5" yields column "a", operator ">" and value "=5". Spaces around the
// column and value are trimmed.
func ParseCondition(token string) (*Condition, error) {
	for i := 1; i < len(token)-1; i++ {
		if strings.IndexByte(operatorChars, token[i]) < 0 {
			continue
		}
		cond := &Condition{
			Column:   strings.TrimSpace(token[:i]),
			Operator: Operator(token[i : i+1]),
			Value:    strings.TrimSpace(token[i+1:]),
		}
		if cond.Column == "" {
			break
		}
		return cond, nil
	}
	return nil, fmt.Errorf("%w: --where %q: expected column=value, column>value or column<value", ErrInvalidFormat, token)
}

// ParseOrderBy parses an order token of the form COLUMN=asc|desc.
func ParseOrderBy(token string) (*OrderSpec, error) {
	parts := strings.Split(token, "=")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return nil, fmt.Errorf("%w: --order-by %q: expected COLUMN=asc|desc", ErrInvalidFormat, token)
	}

	spec := &OrderSpec{Column: strings.TrimSpace(parts[0])}
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
	case "desc":
		spec.Desc = true
	default:
		return nil, fmt.Errorf("%w: --order-by %q: direction must be asc or desc", ErrInvalidFormat, token)
	}
	return spec, nil
}

// ParseAggregate parses an aggregate token of the form COLUMN=FUNC. The
// function name is not checked here; NewAggregator does that.
func ParseAggregate(token string) (*AggregationRequest, error) {
	column, function, ok := strings.Cut(token, "=")
	if !ok || strings.TrimSpace(column) == "" || strings.TrimSpace(function) == "" {
		return nil, fmt.Errorf("%w: --aggregate %q: expected COLUMN=FUNC, e.g. rating=avg", ErrInvalidFormat, token)
	}
	return &AggregationRequest{
		Column:   strings.TrimSpace(column),
		Function: strings.TrimSpace(function),
	}, nil
}
