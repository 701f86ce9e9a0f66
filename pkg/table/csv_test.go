package table

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "player,season,epa\nJosh Allen,2022,0.25\nStefon Diggs,2022,\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if tbl.Cell(0, "player") != "Josh Allen" {
		t.Errorf("expected string cell, got %v", tbl.Cell(0, "player"))
	}
	if tbl.Cell(0, "season") != int64(2022) {
		t.Errorf("expected int64 cell, got %T", tbl.Cell(0, "season"))
	}
	if tbl.Cell(0, "epa") != 0.25 {
		t.Errorf("expected float64 cell, got %v", tbl.Cell(0, "epa"))
	}
	if tbl.Cell(1, "epa") != nil {
		t.Errorf("expected empty cell to be missing, got %v", tbl.Cell(1, "epa"))
	}
}

func TestReadCSVShortRow(t *testing.T) {
	in := "a,b,c\n1,2\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tbl.Cell(0, "c") != nil {
		t.Errorf("expected trailing cell missing, got %v", tbl.Cell(0, "c"))
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl := New("team", "wins", "srs")
	if err := tbl.AppendRow("BUF", int64(13), 5.5); err != nil {
		t.Fatal(err)
	}
	if err := tbl.AppendRow("NYJ", int64(7), nil); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "team,wins,srs\nBUF,13,5.5\nNYJ,7,\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, ""},
		{"string", "GB", "GB"},
		{"int64", int64(42), "42"},
		{"float64", 1.25, "1.25"},
		{"float32", float32(1.5), "1.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.v); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
