package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// ErrInput is the sentinel wrapped by every InputError.
var ErrInput = errors.New("input error")

// InputError reports a source that could not be opened or parsed.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *InputError) Unwrap() []error {
	return []error{ErrInput, e.Err}
}

func inputError(path string, err error) error {
	var ie *InputError
	if errors.As(err, &ie) {
		return err
	}
	return &InputError{Path: path, Err: err}
}

// Options controls how delimited text is parsed.
type Options struct {
	// Delimiter separates fields; defaults to ','
	Delimiter rune
	// TrimLeadingSpace ignores leading white space in a field
	TrimLeadingSpace bool
}

// DefaultOptions returns comma-separated parsing options
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// maxFiles limits glob fan-in to prevent resource exhaustion
const maxFiles = 1000

// ReadFile reads one file into memory. Files ending in .parquet are read as
// parquet; anything else is parsed as delimited text.
func ReadFile(path string, opts Options) (*table.Table, error) {
	if isParquet(path) {
		t, err := ReadParquet(path)
		if err != nil {
			return nil, inputError(path, err)
		}
		return t, nil
	}

	t, err := ReadCSV(path, opts)
	if err != nil {
		return nil, inputError(path, err)
	}
	return t, nil
}

// ReadMultipleFiles reads all files matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// A pattern without wildcards, or one naming an existing file such as
// "data[1].csv", reads that single file unchanged. For real globs
// each row is tagged with a "_file" column containing its source path and the
// table columns are the union of all headers in first-seen order.
func ReadMultipleFiles(pattern string, opts Options) (*table.Table, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return ReadFile(pattern, opts)
	}
	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return ReadFile(pattern, opts)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, inputError(pattern, fmt.Errorf("invalid glob pattern: %w", err))
	}
	if len(matches) == 0 {
		return nil, inputError(pattern, errors.New("no files match pattern"))
	}
	if len(matches) > maxFiles {
		return nil, inputError(pattern, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles))
	}

	result := &table.Table{}
	for _, path := range matches {
		t, err := ReadFile(path, opts)
		if err != nil {
			return nil, err
		}

		result.Columns = table.MergeColumns(result.Columns, t.Columns...)
		for _, row := range t.Rows {
			row[FileColumn] = path
		}
		result.Rows = append(result.Rows, t.Rows...)
	}

	// Files with fewer columns leave gaps; pad them so every row carries
	// the full header
	for _, row := range result.Rows {
		for _, col := range result.Columns {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
	}
	result.Columns = table.MergeColumns(result.Columns, FileColumn)

	return result, nil
}

// FileColumn is added to rows read through a glob pattern
const FileColumn = "_file"

func isParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}
