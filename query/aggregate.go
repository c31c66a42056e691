package query

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// Strategy reduces a sequence of numbers to one number.
//
// Strategies never fail: an empty input yields NaN, which callers must treat
// as "no result". Aggregator does that conversion.
type Strategy interface {
	Name() string
	Aggregate(values []float64) float64
}

type avgStrategy struct{}

func (avgStrategy) Name() string { return "avg" }

func (avgStrategy) Aggregate(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

type minStrategy struct{}

func (minStrategy) Name() string { return "min" }

func (minStrategy) Aggregate(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

type maxStrategy struct{}

func (maxStrategy) Name() string { return "max" }

func (maxStrategy) Aggregate(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	highest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

type medianStrategy struct{}

func (medianStrategy) Name() string { return "median" }

func (medianStrategy) Aggregate(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// strategies is the fixed registry of aggregation functions. It is never
// modified after package initialisation.
var strategies = map[string]Strategy{
	"avg":    avgStrategy{},
	"min":    minStrategy{},
	"max":    maxStrategy{},
	"median": medianStrategy{},
}

// LookupStrategy returns the strategy registered under name.
func LookupStrategy(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownAggregation, name, strings.Join(StrategyNames(), ", "))
	}
	return s, nil
}

// StrategyNames returns the registered aggregation names in sorted order
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of an aggregation. Valid is false when no row
// contributed a value.
type Result struct {
	Value float64
	Valid bool
}

// String formats the result for display; an absent result renders empty
func (r Result) String() string {
	if !r.Valid {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Aggregator extracts a numeric column and reduces it with a Strategy.
type Aggregator struct {
	column   string
	strategy Strategy
}

// NewAggregator selects the strategy up front so an unknown name is rejected
// before any row is touched.
func NewAggregator(column, function string) (*Aggregator, error) {
	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}
	strategy, err := LookupStrategy(function)
	if err != nil {
		return nil, err
	}
	return &Aggregator{column: column, strategy: strategy}, nil
}

// Column returns the aggregated column
func (a *Aggregator) Column() string { return a.column }

// Strategy returns the selected strategy
func (a *Aggregator) Strategy() Strategy { return a.strategy }

// Aggregate computes the aggregate over rows. Every row must carry the
// column; empty cells are skipped and any other non-numeric cell, including
// one holding only spaces, is an error.
func (a *Aggregator) Aggregate(rows []table.Row) (Result, error) {
	values := make([]float64, 0, len(rows))
	for i, row := range rows {
		cell, err := row.Get(a.column)
		if err != nil {
			return Result{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if cell == "" {
			continue
		}
		num, ok := parseNumber(cell)
		if !ok {
			return Result{}, fmt.Errorf("%w: column %q row %d: %q", ErrInvalidNumericValue, a.column, i+1, cell)
		}
		values = append(values, num)
	}

	if len(values) == 0 {
		return Result{}, nil
	}

	v := a.strategy.Aggregate(values)
	if math.IsNaN(v) {
		return Result{}, nil
	}
	return Result{Value: v, Valid: true}, nil
}

// ResultWriter receives the one-row aggregate result. output.Formatter
// satisfies it.
type ResultWriter interface {
	Format(columns []string, rows []table.Row) error
}

// AggregateCommand writes an aggregate of its input and passes the input
// through unchanged.
type AggregateCommand struct {
	aggregator *Aggregator
	out        ResultWriter
}

// NewAggregateCommand creates an aggregate stage writing its result to out
func NewAggregateCommand(aggregator *Aggregator, out ResultWriter) *AggregateCommand {
	return &AggregateCommand{aggregator: aggregator, out: out}
}

// Name returns the stage name
func (c *AggregateCommand) Name() string {
	return "aggregate " + c.aggregator.column + "=" + c.aggregator.strategy.Name()
}

// Execute computes the aggregate, writes it and returns rows as given
func (c *AggregateCommand) Execute(rows []table.Row) ([]table.Row, error) {
	result, err := c.aggregator.Aggregate(rows)
	if err != nil {
		return nil, err
	}

	label := c.aggregator.strategy.Name()
	if err := c.out.Format([]string{label}, []table.Row{{label: result.String()}}); err != nil {
		return nil, fmt.Errorf("failed to write aggregate: %w", err)
	}
	return rows, nil
}
