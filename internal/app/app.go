// Package app wires the reader, the query pipeline and the printer into a
// single csvcat invocation.
package app

import (
	"errors"
	"fmt"

	"github.com/vegasq/csvcat/internal/logger"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
	"github.com/vegasq/csvcat/table"
)

// ErrNoInput is returned when a request names no input file
var ErrNoInput = errors.New("no input file")

// RunError reports a failed pipeline stage together with the columns of the
// input it ran over.
type RunError struct {
	Columns []string
	Err     error
}

func (e *RunError) Error() string { return e.Err.Error() }

// Unwrap returns the stage error
func (e *RunError) Unwrap() error { return e.Err }

// Source loads a table from a path or glob pattern
type Source interface {
	Read(path string) (*table.Table, error)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(path string) (*table.Table, error)

// Read calls f(path)
func (f SourceFunc) Read(path string) (*table.Table, error) { return f(path) }

// FileSource reads local files with reader.ReadMultipleFiles
func FileSource(opts reader.Options) Source {
	return SourceFunc(func(path string) (*table.Table, error) {
		return reader.ReadMultipleFiles(path, opts)
	})
}

// Request is one parsed invocation
type Request struct {
	File   string
	Stages query.Stages
	// Limit caps the number of printed rows; 0 means unlimited
	Limit int
}

// App runs requests against its collaborators
type App struct {
	Source  Source
	Printer output.Formatter
	// Results receives the aggregate value; Printer is used when nil
	Results query.ResultWriter
	Logger  *logger.Logger
}

// Run builds the pipeline, loads the input, runs every stage and prints the
// surviving rows. When an aggregate is requested its single-value result is
// the only output and the row table is suppressed.
func (a *App) Run(req Request) error {
	log := a.logger()

	if req.File == "" {
		return ErrNoInput
	}
	if req.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", req.Limit)
	}

	results := a.Results
	if results == nil {
		results = a.Printer
	}

	// Validate every stage before touching the input
	pipeline, err := query.NewPipeline(req.Stages, results)
	if err != nil {
		return err
	}
	pipeline.Observe(func(name string, in, out int) {
		log.Debug("stage finished", "stage", name, "rows_in", in, "rows_out", out)
	})
	log.Debug("pipeline assembled", "stages", len(pipeline.Commands()))

	t, err := a.Source.Read(req.File)
	if err != nil {
		return err
	}
	log.Debug("input loaded", "file", req.File, "rows", len(t.Rows), "columns", len(t.Columns))

	rows, err := pipeline.Run(t.Rows)
	if err != nil {
		return &RunError{Columns: t.Columns, Err: err}
	}

	if req.Stages.Aggregate != nil {
		// The aggregate stage passes its input through
		if len(rows) == 0 {
			log.Warn("aggregate input is empty; result is absent",
				"column", req.Stages.Aggregate.Column, "function", req.Stages.Aggregate.Function)
		}
		return nil
	}

	if req.Limit > 0 && len(rows) > req.Limit {
		log.Debug("limiting output", "rows", len(rows), "limit", req.Limit)
		rows = rows[:req.Limit]
	}
	if rows == nil {
		rows = []table.Row{}
	}
	return a.Printer.Format(t.Columns, rows)
}

// Schema prints one row per column of the input with its inferred type
func (a *App) Schema(file string) error {
	if file == "" {
		return ErrNoInput
	}

	t, err := a.Source.Read(file)
	if err != nil {
		return err
	}
	a.logger().Debug("describing input", "file", file, "columns", len(t.Columns))

	columns, rows := reader.SchemaRows(reader.DescribeColumns(t))
	return a.Printer.Format(columns, rows)
}

func (a *App) logger() *logger.Logger {
	if a.Logger == nil {
		return logger.NewNop()
	}
	return a.Logger
}
