package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
)

// WriteTable writes the table in the specified format
func WriteTable(w io.Writer, t *table.Table, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, t)
	case FormatCSV:
		return t.WriteCSV(w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the table as an array of column-keyed objects. Missing
// cells are emitted as null.
func writeJSON(w io.Writer, t *table.Table) error {
	cols := t.Columns()
	records := make([]map[string]any, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := make(map[string]any, len(cols))
		for _, col := range cols {
			rec[col] = t.Cell(i, col)
		}
		records = append(records, rec)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
