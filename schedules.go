package nfldata

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ImportSchedules imports game schedules for the given seasons.
func (c *Client) ImportSchedules(ctx context.Context, years []int) (*table.Table, error) {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return nil, err
	}

	data, err := c.fetch.Get(ctx, c.src.Schedules)
	if err != nil {
		return nil, fmt.Errorf("importing schedules: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing schedules: %w", err)
	}
	return filterSeasons(t, years), nil
}

// ImportOfficials imports game officials. A season column is derived from the
// game id; years is optional and filters when non-empty.
func (c *Client) ImportOfficials(ctx context.Context, years []int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.Officials())
	if err != nil {
		return nil, fmt.Errorf("importing officials: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing officials: %w", err)
	}

	addSeasonFromGameID(t)
	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}

// filterSeasons keeps the rows whose season column is one of years.
func filterSeasons(t *table.Table, years []int) *table.Table {
	return t.Filter(func(r table.Row) bool {
		season, ok := yearOf(r.Get("season"))
		return ok && containsInt(years, season)
	})
}

// addSeasonFromGameID derives a season column from the leading year of game
// ids like "2023_01_DET_KC".
func addSeasonFromGameID(t *table.Table) {
	t.Apply("season", func(r table.Row) any {
		id := table.AsString(r.Get("game_id"))
		if len(id) < 4 {
			return nil
		}
		year, err := strconv.Atoi(id[:4])
		if err != nil {
			return nil
		}
		return int64(year)
	})
}
