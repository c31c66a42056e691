// Package reader loads tabular files into memory as table.Table values.
//
// Delimited text (CSV, TSV, any single-character separator) and Apache
// Parquet files are supported. Every cell is returned as text; the reader
// never interprets values.
//
// # Basic Usage
//
// Reading a single file:
//
//	t, err := reader.ReadFile("products.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range t.Rows {
//	    fmt.Println(row["brand"], row["price"])
//	}
//
// Reading tab-separated text:
//
//	opts := reader.DefaultOptions()
//	opts.Delimiter = '\t'
//	t, err := reader.ReadFile("products.tsv", opts)
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	t, err := reader.ReadMultipleFiles("data/*.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Each row includes a "_file" column with the source file path
//	for _, row := range t.Rows {
//	    fmt.Printf("From %s: %v\n", row["_file"], row)
//	}
//
// # Errors
//
// Every failure is returned as an *InputError wrapping ErrInput and the
// underlying cause, so both of these work:
//
//	errors.Is(err, reader.ErrInput)
//	errors.Is(err, fs.ErrNotExist)
//
// # Resource Management
//
// File handles are closed before ReadFile returns. When using
// NewParquetReader directly, call Close when done.
//
// The package uses github.com/parquet-go/parquet-go for parquet files and
// encoding/csv for delimited text.
package reader
