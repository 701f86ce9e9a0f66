package nfldata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/internal/logger"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// Earliest seasons covered by the supplementary datasets.
const (
	earliestDepthChartSeason = 2001
	earliestQBRSeason        = 2006
	earliestInjurySeason     = 2009
	earliestSnapCountSeason  = 2012
	earliestPFRSeason        = 2018
	earliestFTNSeason        = 2022
)

// NGS stat types.
const (
	NGSPassing   = "passing"
	NGSRushing   = "rushing"
	NGSReceiving = "receiving"
)

// ImportNGS imports next-gen stats of one stat type: passing, rushing, or
// receiving. years is optional and filters when non-empty.
func (c *Client) ImportNGS(ctx context.Context, statType string, years []int) (*table.Table, error) {
	if statType != NGSPassing && statType != NGSRushing && statType != NGSReceiving {
		return nil, fmt.Errorf("stat type must be one of %s, %s, %s", NGSReceiving, NGSPassing, NGSRushing)
	}

	data, err := c.fetch.Get(ctx, c.src.NGS(statType))
	if err != nil {
		return nil, fmt.Errorf("importing ngs %s: %w", statType, err)
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, fmt.Errorf("importing ngs %s: %w", statType, err)
	}

	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}

// QBR levels and frequencies.
const (
	QBRLevelNFL     = "nfl"
	QBRLevelCollege = "college"
	QBRFreqSeason   = "season"
	QBRFreqWeekly   = "weekly"
)

// ImportQBR imports ESPN QBR data for a level (nfl, college) and frequency
// (season, weekly). years is optional; when non-empty the result is limited
// to seasons between the smallest and largest requested year.
func (c *Client) ImportQBR(ctx context.Context, years []int, level, frequency string) (*table.Table, error) {
	if len(years) > 0 {
		if err := validateYears(years, earliestQBRSeason); err != nil {
			return nil, err
		}
	}
	if level != QBRLevelNFL && level != QBRLevelCollege {
		return nil, fmt.Errorf("level must be %s or %s", QBRLevelNFL, QBRLevelCollege)
	}
	if frequency != QBRFreqSeason && frequency != QBRFreqWeekly {
		return nil, fmt.Errorf("frequency must be %s or %s", QBRFreqSeason, QBRFreqWeekly)
	}

	data, err := c.fetch.Get(ctx, c.src.QBRFile(level, frequency))
	if err != nil {
		return nil, fmt.Errorf("importing qbr: %w", err)
	}
	t, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing qbr: %w", err)
	}

	if len(years) > 0 {
		lo, hi := years[0], years[0]
		for _, y := range years {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
		t = t.Filter(func(r table.Row) bool {
			season, ok := yearOf(r.Get("season"))
			return ok && season >= lo && season <= hi
		})
	}
	return t, nil
}

// PFR stat types.
const (
	PFRPassing   = "pass"
	PFRReceiving = "rec"
	PFRRushing   = "rush"
	PFRDefense   = "def"
)

func validatePFRStatType(statType string) error {
	switch statType {
	case PFRPassing, PFRReceiving, PFRRushing, PFRDefense:
		return nil
	}
	return fmt.Errorf("stat type must be one of %s, %s, %s, %s", PFRPassing, PFRReceiving, PFRRushing, PFRDefense)
}

// ImportSeasonalPFR imports season-level advanced stats of one stat type:
// pass, rec, rush, or def. years is optional and filters when non-empty.
func (c *Client) ImportSeasonalPFR(ctx context.Context, statType string, years []int) (*table.Table, error) {
	if err := validatePFRStatType(statType); err != nil {
		return nil, err
	}
	if len(years) > 0 {
		if err := validateYears(years, earliestPFRSeason); err != nil {
			return nil, err
		}
	}

	data, err := c.fetch.Get(ctx, c.src.PFRSeason(statType))
	if err != nil {
		return nil, fmt.Errorf("importing pfr %s: %w", statType, err)
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, fmt.Errorf("importing pfr %s: %w", statType, err)
	}

	if len(years) > 0 {
		t = filterSeasons(t, years)
	}
	return t, nil
}

// ImportWeeklyPFR imports week-level advanced stats of one stat type: pass,
// rec, rush, or def. With no years, every season present in the season-level
// file is imported.
func (c *Client) ImportWeeklyPFR(ctx context.Context, statType string, years []int) (*table.Table, error) {
	if err := validatePFRStatType(statType); err != nil {
		return nil, err
	}
	if len(years) > 0 {
		if err := validateYears(years, earliestPFRSeason); err != nil {
			return nil, err
		}
	}

	if len(years) == 0 {
		seasonal, err := c.ImportSeasonalPFR(ctx, statType, nil)
		if err != nil {
			return nil, err
		}
		for _, v := range seasonal.Unique("season") {
			if y, ok := yearOf(v); ok {
				years = append(years, y)
			}
		}
	}

	var parts []*table.Table
	for _, year := range years {
		data, err := c.fetch.Get(ctx, c.src.PFRWeek(statType, year))
		if err != nil {
			return nil, fmt.Errorf("importing %d pfr %s: %w", year, statType, err)
		}
		t, err := table.ReadParquet(data)
		if err != nil {
			return nil, fmt.Errorf("importing %d pfr %s: %w", year, statType, err)
		}
		parts = append(parts, t)
	}
	return filterSeasons(table.Concat(parts...), years), nil
}

// ImportSnapCounts imports weekly player snap counts for the given seasons.
func (c *Client) ImportSnapCounts(ctx context.Context, years []int) (*table.Table, error) {
	return c.importSeasonParquet(ctx, "snap_counts", years, earliestSnapCountSeason, c.src.SnapCounts)
}

// ImportDepthCharts imports team depth charts for the given seasons.
func (c *Client) ImportDepthCharts(ctx context.Context, years []int) (*table.Table, error) {
	return c.importSeasonParquet(ctx, "depth_charts", years, earliestDepthChartSeason, c.src.DepthCharts)
}

// ImportInjuries imports team injury reports for the given seasons.
func (c *Client) ImportInjuries(ctx context.Context, years []int) (*table.Table, error) {
	return c.importSeasonParquet(ctx, "injuries", years, earliestInjurySeason, c.src.Injuries)
}

// FTNOptions controls ImportFTN.
type FTNOptions struct {
	// Columns restricts the result to these columns. Empty means all.
	Columns []string
	// Downcast converts float64 columns to float32 to reduce memory.
	Downcast bool
}

// ImportFTN imports FTN play charting data for the given seasons.
func (c *Client) ImportFTN(ctx context.Context, years []int, opts FTNOptions) (*table.Table, error) {
	t, err := c.importSeasonParquet(ctx, "ftn_charting", years, earliestFTNSeason, c.src.FTN)
	if err != nil {
		return nil, err
	}

	if len(opts.Columns) > 0 {
		t, err = t.Select(opts.Columns)
		if err != nil {
			return nil, err
		}
	}
	if opts.Downcast {
		t.DowncastFloats()
	}
	return t, nil
}

// ImportContracts imports historical contract data.
func (c *Client) ImportContracts(ctx context.Context) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.Contracts())
	if err != nil {
		return nil, fmt.Errorf("importing contracts: %w", err)
	}
	return table.ReadParquet(data)
}

// importSeasonParquet fetches and concatenates one parquet file per season.
func (c *Client) importSeasonParquet(ctx context.Context, dataset string, years []int, earliest int, urlFor func(int) string) (*table.Table, error) {
	if err := validateYears(years, earliest); err != nil {
		return nil, err
	}

	var parts []*table.Table
	for _, year := range years {
		data, err := c.fetch.Get(ctx, urlFor(year))
		if err != nil {
			return nil, fmt.Errorf("importing %d %s: %w", year, dataset, err)
		}
		t, err := table.ReadParquet(data)
		if err != nil {
			return nil, fmt.Errorf("importing %d %s: %w", year, dataset, err)
		}
		logger.Info("season imported", logger.Fields{"dataset": dataset, "season": year, "rows": t.Len()})
		parts = append(parts, t)
	}
	return table.Concat(parts...), nil
}
