// Package output provides formatters for writing csvcat rows.
//
// This package defines the Formatter interface and provides implementations
// for a bordered text grid, CSV and JSON Lines. All formatters work with
// rows represented as []table.Row plus an optional column order.
//
// # Supported Formats
//
//   - Table: bordered grid with a header row (the default)
//   - CSV: Comma-separated values with header row
//   - JSON Lines: One JSON object per line (suitable for streaming)
//
// # Basic Usage
//
// Using the table formatter:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(t.Columns, t.Rows); err != nil {
//	    log.Fatal(err)
//	}
//
// Selecting a formatter by name:
//
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err) // wraps ErrUnsupportedFormat
//	}
//
// # Column Order
//
// Passing nil columns makes the formatter derive the sorted union of all row
// keys, which handles sparse rows:
//
//	formatter.Format(nil, rows)
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//	if err := formatter.Format(columns, rows); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
//
// # CSV Injection
//
// The CSV formatter prefixes cells starting with formula characters
// (=, +, -, @, tab, CR, LF, |) with a single quote. Negative numbers are
// written unchanged.
package output
