package nfldata

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ImportIDs imports the mapping table of player ids across major data
// providers. ids names providers ("gsis", "espn", ...) and selects their
// "<provider>_id" columns; empty means all id columns. columns selects the
// non-id descriptive columns to keep; empty means all of them. Requesting a
// provider or column the file does not define fails with ErrUnknownColumn.
func (c *Client) ImportIDs(ctx context.Context, columns, ids []string) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.PlayerIDs)
	if err != nil {
		return nil, fmt.Errorf("importing ids: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing ids: %w", err)
	}

	var idCols, otherCols []string
	for _, c := range t.Columns() {
		if strings.HasSuffix(c, "_id") {
			idCols = append(idCols, c)
		} else {
			otherCols = append(otherCols, c)
		}
	}

	wantIDs := idCols
	if len(ids) > 0 {
		wantIDs = make([]string, len(ids))
		for i, id := range ids {
			wantIDs[i] = id + "_id"
		}
	}
	wantCols := otherCols
	if len(columns) > 0 {
		wantCols = columns
	}

	// Keep source-file column order for a deterministic result.
	want := make(map[string]bool, len(wantIDs)+len(wantCols))
	for _, c := range wantIDs {
		want[c] = true
	}
	for _, c := range wantCols {
		want[c] = true
	}
	var keep []string
	for _, c := range t.Columns() {
		if want[c] {
			keep = append(keep, c)
			delete(want, c)
		}
	}
	for c := range want {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}

	return t.Select(keep)
}
