package nfldata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ImportDraftPicks imports draft pick history. years is optional and filters
// when non-empty.
func (c *Client) ImportDraftPicks(ctx context.Context, years []int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.DraftPicks())
	if err != nil {
		return nil, fmt.Errorf("importing draft picks: %w", err)
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, fmt.Errorf("importing draft picks: %w", err)
	}

	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}

// ImportDraftValues imports draft pick valuations from several models. picks
// is optional; when non-empty the result is limited to picks between the
// first and last element, inclusive.
func (c *Client) ImportDraftValues(ctx context.Context, picks []int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.DraftValues())
	if err != nil {
		return nil, fmt.Errorf("importing draft values: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing draft values: %w", err)
	}

	if len(picks) > 0 {
		lo, hi := picks[0], picks[len(picks)-1]
		t = t.Filter(func(r table.Row) bool {
			pick, ok := yearOf(r.Get("pick"))
			return ok && pick >= lo && pick <= hi
		})
	}
	return t, nil
}

// ImportCombine imports combine results for all position groups. years and
// positions are optional filters.
func (c *Client) ImportCombine(ctx context.Context, years []int, positions []string) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.Combine())
	if err != nil {
		return nil, fmt.Errorf("importing combine: %w", err)
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, fmt.Errorf("importing combine: %w", err)
	}

	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	if len(positions) > 0 {
		want := make(map[string]bool, len(positions))
		for _, p := range positions {
			want[p] = true
		}
		t = t.Filter(func(r table.Row) bool {
			return want[table.AsString(r.Get("pos"))]
		})
	}
	return t, nil
}
