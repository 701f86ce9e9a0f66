package nfldata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ImportWinTotals imports pre-season win total and betting lines. Rows
// without a game id are dropped and a season column is derived from the game
// id; years is optional and filters when non-empty.
func (c *Client) ImportWinTotals(ctx context.Context, years []int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.WinTotals)
	if err != nil {
		return nil, fmt.Errorf("importing win totals: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing win totals: %w", err)
	}

	t = t.DropMissing([]string{"game_id"})
	addSeasonFromGameID(t)
	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}

// ImportSCLines imports weekly scoring lines. years is optional and filters
// when non-empty.
func (c *Client) ImportSCLines(ctx context.Context, years []int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.SCLines())
	if err != nil {
		return nil, fmt.Errorf("importing scoring lines: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing scoring lines: %w", err)
	}

	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}
