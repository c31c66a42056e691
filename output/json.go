package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/vegasq/csvcat/table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line). When columns
// is given, each object carries exactly those keys.
func (j *JSONFormatter) Format(columns []string, rows []table.Row) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := map[string]string(row)
		if columns != nil {
			obj = make(map[string]string, len(columns))
			for _, col := range columns {
				obj[col] = row[col]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
