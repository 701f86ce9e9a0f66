package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// ReadParquet parses a parquet file held in memory into a table. Column order
// follows the file's schema; every leaf value is converted to a table scalar
// (strings for byte arrays, int64 for integers, float64 for doubles, float64
// for floats, bool for booleans) and nulls become missing values.
func ReadParquet(data []byte) (*Table, error) {
	f, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening parquet file: %w", err)
	}

	fields := f.Schema().Fields()
	cols := make([]string, len(fields))
	for i, fl := range fields {
		cols[i] = fl.Name()
	}
	t := New(cols...)

	for _, rg := range f.RowGroups() {
		if err := readRowGroup(t, rg, len(cols)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func readRowGroup(t *Table, rg parquet.RowGroup, width int) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := rows.ReadRows(buf)
		for _, pr := range buf[:n] {
			vals := make([]any, width)
			for _, v := range pr {
				ci := v.Column()
				if ci < 0 || ci >= width {
					continue
				}
				vals[ci] = parquetScalar(v)
			}
			t.rows = append(t.rows, vals)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading parquet rows: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}

func parquetScalar(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return v.String()
	default:
		return v.String()
	}
}
