package nfldata

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/nfl-data/internal/fetch"
	"github.com/pfrederiksen/nfl-data/internal/logger"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// earliestPBPSeason is the first season play-by-play data exists for.
const earliestPBPSeason = 1999

// PBPOptions controls ImportPBP.
type PBPOptions struct {
	// Columns restricts the result to these columns. Empty means all.
	Columns []string
	// IncludeParticipation merges per-play participation data where the host
	// provides it for a season.
	IncludeParticipation bool
	// Downcast converts float64 columns to float32 to reduce memory.
	Downcast bool
	// UseCache serves seasons from the local cache when present and fills the
	// cache on download. Requires a client cache directory.
	UseCache bool
}

// ImportPBP imports play-by-play data for the given seasons.
func (c *Client) ImportPBP(ctx context.Context, years []int, opts PBPOptions) (*table.Table, error) {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return nil, err
	}

	// The season column is appended per year below; the join keys must
	// survive any projection for the participation merge.
	cols := without(opts.Columns, "season")
	if opts.IncludeParticipation && len(cols) > 0 {
		cols = ensure(cols, "play_id", "game_id")
	}

	var parts []*table.Table
	for _, year := range years {
		data, err := c.getBytes(ctx, c.src.PBP(year), pbpCacheKey(year), opts.UseCache)
		if err != nil {
			return nil, fmt.Errorf("importing %d play-by-play: %w", year, err)
		}
		t, err := table.ReadParquet(data)
		if err != nil {
			return nil, fmt.Errorf("importing %d play-by-play: %w", year, err)
		}
		if len(cols) > 0 {
			t, err = t.Select(cols)
			if err != nil {
				return nil, err
			}
		}
		t.SetConst("season", int64(year))

		if opts.IncludeParticipation && !opts.UseCache {
			t, err = c.mergeParticipation(ctx, t, year)
			if err != nil {
				return nil, err
			}
		}

		logger.Info("season imported", logger.Fields{"dataset": "pbp", "season": year, "rows": t.Len()})
		parts = append(parts, t)
	}

	out := table.Concat(parts...)
	if opts.Downcast {
		out.DowncastFloats()
	}
	return out, nil
}

// mergeParticipation left-joins the participation file onto a season's plays.
// Seasons without a participation file are returned unchanged.
func (c *Client) mergeParticipation(ctx context.Context, t *table.Table, year int) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.Participation(year))
	if errors.Is(err, fetch.ErrNotFound) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("importing %d participation: %w", year, err)
	}
	part, err := table.ReadParquet(data)
	if err != nil {
		return nil, fmt.Errorf("importing %d participation: %w", year, err)
	}
	return table.LeftJoin(t, part,
		[]string{"play_id", "game_id"},
		[]string{"play_id", "nflverse_game_id"})
}

// CachePBP downloads play-by-play files for the given seasons into the local
// cache, replacing any cached copies. The client must be configured with a
// cache directory.
func (c *Client) CachePBP(ctx context.Context, years []int) error {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return err
	}
	if c.cache == nil {
		return errors.New("no cache directory configured")
	}

	for _, year := range years {
		data, err := c.fetch.Get(ctx, c.src.PBP(year))
		if err != nil {
			return fmt.Errorf("caching %d play-by-play: %w", year, err)
		}
		if err := c.cache.Save(pbpCacheKey(year), data); err != nil {
			return fmt.Errorf("caching %d play-by-play: %w", year, err)
		}
		logger.Info("season cached", logger.Fields{"dataset": "pbp", "season": year, "bytes": len(data)})
	}
	return nil
}

// SeePBPColumns returns the full list of play-by-play column names.
func (c *Client) SeePBPColumns(ctx context.Context) ([]string, error) {
	data, err := c.fetch.Get(ctx, c.src.PBP(2020))
	if err != nil {
		return nil, err
	}
	t, err := table.ReadParquet(data)
	if err != nil {
		return nil, err
	}
	return t.Columns(), nil
}

func pbpCacheKey(year int) string {
	return fmt.Sprintf("pbp/play_by_play_%d.parquet", year)
}
