package nfldata

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/internal/logger"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// WeeklyOptions controls ImportWeekly.
type WeeklyOptions struct {
	// Columns restricts the result to these columns. Empty means all.
	Columns []string
	// Downcast converts float64 columns to float32 to reduce memory.
	Downcast bool
}

// ImportWeekly imports weekly player stats for the given seasons.
func (c *Client) ImportWeekly(ctx context.Context, years []int, opts WeeklyOptions) (*table.Table, error) {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return nil, err
	}

	out, err := c.loadPlayerStats(ctx, years)
	if err != nil {
		return nil, err
	}

	if len(opts.Columns) > 0 {
		out, err = out.Select(opts.Columns)
		if err != nil {
			return nil, err
		}
	}
	if opts.Downcast {
		out.DowncastFloats()
	}
	return out, nil
}

// loadPlayerStats fetches and concatenates the weekly stat files for years.
func (c *Client) loadPlayerStats(ctx context.Context, years []int) (*table.Table, error) {
	var parts []*table.Table
	for _, year := range years {
		data, err := c.fetch.Get(ctx, c.src.PlayerStats(year))
		if err != nil {
			return nil, fmt.Errorf("importing %d weekly stats: %w", year, err)
		}
		t, err := table.ReadParquet(data)
		if err != nil {
			return nil, fmt.Errorf("importing %d weekly stats: %w", year, err)
		}
		logger.Info("season imported", logger.Fields{"dataset": "weekly", "season": year, "rows": t.Len()})
		parts = append(parts, t)
	}
	return table.Concat(parts...), nil
}

// SeeWeeklyColumns returns the full list of weekly stat column names.
func (c *Client) SeeWeeklyColumns(ctx context.Context) ([]string, error) {
	data, err := c.fetch.Get(ctx, c.src.PlayerStats(2020))
	if err != nil {
		return nil, err
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, err
	}
	return t.Columns(), nil
}
