// Package query implements the csvcat row pipeline over table.Row values.
//
// The package provides:
//   - a single-column comparison filter (>, <, =) with numeric or string semantics
//   - a fixed set of aggregation strategies (avg, min, max, median)
//   - a stable single-column ORDER BY
//   - the Command and Pipeline types that chain filter, order-by and aggregate
//   - parsers for the command-line tokens that describe those stages
//
// # Basic Usage
//
// Parse the command-line tokens and assemble a pipeline:
//
//	where, err := query.ParseCondition("price>150")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	order, err := query.ParseOrderBy("brand=asc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := query.NewPipeline(query.Stages{Where: where, OrderBy: order}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err = p.Run(rows)
//
// # Comparison Semantics
//
// When both the cell and the literal parse as floating-point numbers the
// comparison is numeric. Otherwise both sides are compared as raw strings,
// so "10" > "9" is false when either side is not a number:
//
//	cmp, _ := query.NewComparison("price", query.OpGreater, "150")
//	ok, err := cmp.Match(table.Row{"price": "200"}) // true
//
// # Aggregation
//
// Aggregations skip empty cells and fail on any other non-numeric cell. An
// aggregation over no values returns an invalid Result rather than a number:
//
//	agg, err := query.NewAggregator("price", "median")
//	if err != nil {
//	    log.Fatal(err) // unknown function names fail here
//	}
//	res, err := agg.Aggregate(rows)
//	if res.Valid {
//	    fmt.Println(res.Value)
//	}
//
// # Errors
//
// Errors wrap the package sentinels (ErrUnsupportedOperator,
// ErrUnknownAggregation, ErrInvalidNumericValue, ErrInvalidFormat) and
// table.ErrMissingColumn; test for them with errors.Is.
package query
