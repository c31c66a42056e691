package query

import (
	"fmt"

	"github.com/vegasq/csvcat/table"
)

// Command is one pipeline stage. Execute must not modify the slice it is
// given; it returns the rows for the next stage.
type Command interface {
	Name() string
	Execute(rows []table.Row) ([]table.Row, error)
}

// StageObserver is notified after each stage completes
type StageObserver func(name string, in, out int)

// Pipeline runs commands in order, feeding each output into the next.
type Pipeline struct {
	commands []Command
	observer StageObserver
}

// NewPipeline assembles the fixed stage order: filter, then order-by, then
// aggregate. Absent stages are skipped. Every stage is validated here, so a
// bad operator or aggregation name fails before any row is processed.
//
// out receives the aggregate result and may be nil when no aggregate stage is
// requested.
func NewPipeline(stages Stages, out ResultWriter) (*Pipeline, error) {
	p := &Pipeline{}

	if stages.Where != nil {
		cmp, err := NewComparisonFromCondition(*stages.Where)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
		p.commands = append(p.commands, NewFilterCommand(cmp))
	}

	if stages.OrderBy != nil {
		cmd, err := NewOrderByCommand(*stages.OrderBy)
		if err != nil {
			return nil, fmt.Errorf("invalid order-by: %w", err)
		}
		p.commands = append(p.commands, cmd)
	}

	if stages.Aggregate != nil {
		agg, err := NewAggregator(stages.Aggregate.Column, stages.Aggregate.Function)
		if err != nil {
			return nil, fmt.Errorf("invalid aggregate: %w", err)
		}
		if out == nil {
			return nil, fmt.Errorf("invalid aggregate: no result writer")
		}
		p.commands = append(p.commands, NewAggregateCommand(agg, out))
	}

	return p, nil
}

// Observe registers fn to be called after each stage
func (p *Pipeline) Observe(fn StageObserver) {
	p.observer = fn
}

// Commands returns the assembled stages in execution order
func (p *Pipeline) Commands() []Command {
	return p.commands
}

// Run executes every stage in order and stops at the first error.
func (p *Pipeline) Run(rows []table.Row) ([]table.Row, error) {
	for _, cmd := range p.commands {
		in := len(rows)
		out, err := cmd.Execute(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		if p.observer != nil {
			p.observer(cmd.Name(), in, len(out))
		}
		rows = out
	}
	return rows, nil
}
