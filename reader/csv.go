package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/csvcat/table"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a delimited text file. The first record is the header.
// Records shorter than the header are padded with empty cells; longer
// records are rejected.
func ReadCSV(path string, opts Options) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseCSV(file, opts)
}

// ParseCSV parses delimited text from r.
func ParseCSV(r io.Reader, opts Options) (*table.Table, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if err := ValidateDelimiter(opts.Delimiter); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.TrimLeadingSpace = opts.TrimLeadingSpace
	cr.FieldsPerRecord = -1 // ragged records are handled below
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &table.Table{Rows: []table.Row{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	rows := make([]table.Row, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("record on line %d has %d fields, header has %d", line, len(record), len(header))
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	// A repeated header name keeps the rightmost cell
	return &table.Table{Columns: table.MergeColumns(nil, header...), Rows: rows}, nil
}

// ValidateDelimiter checks that r can be used as a field separator
func ValidateDelimiter(r rune) error {
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("invalid delimiter %q", r)
	}
	return nil
}

// ParseDelimiter converts a configured delimiter string to a rune. The
// escape "\t" and the word "tab" both mean a tab character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	if err := ValidateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}
