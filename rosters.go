package nfldata

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pfrederiksen/nfl-data/internal/logger"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// rosterRenames aligns roster column names with the stat files.
var rosterRenames = map[string]string{
	"gsis_id":   "player_id",
	"full_name": "player_name",
}

// ImportSeasonalRosters imports end-of-season team rosters for the given
// seasons. An age column is derived from birth dates as of September 1 of
// the season; rows without a player id are dropped.
func (c *Client) ImportSeasonalRosters(ctx context.Context, years []int, columns []string) (*table.Table, error) {
	t, err := c.importRosters(ctx, years, columns, false)
	if err != nil {
		return nil, err
	}

	if t.HasColumn("birth_date") && t.HasColumn("season") {
		t.Apply("age", func(r table.Row) any {
			season, ok := yearOf(r.Get("season"))
			if !ok {
				return nil
			}
			born, ok := parseDate(r.Get("birth_date"))
			if !ok {
				return nil
			}
			age := int64(season) - int64(born.Year())
			if int(born.Month()) >= 9 {
				age--
			}
			return age
		})
	}

	if t.HasColumn("player_id") {
		t = t.DropMissing([]string{"player_id"})
	}
	return t, nil
}

// ImportWeeklyRosters imports week-by-week team rosters, including in-season
// changes, for the given seasons. Each row's age is computed to three decimal
// places as of the player's game day, resolved through the schedules file;
// rows with no matching game keep a missing age.
func (c *Client) ImportWeeklyRosters(ctx context.Context, years []int, columns []string) (*table.Table, error) {
	t, err := c.importRosters(ctx, years, columns, true)
	if err != nil {
		return nil, err
	}

	if t.HasColumn("birth_date") && t.HasColumn("season") && t.HasColumn("week") && t.HasColumn("team") {
		gamedays, err := c.gamedayIndex(ctx)
		if err != nil {
			return nil, err
		}
		t.Apply("age", func(r table.Row) any {
			key := gamedayKey(r.Get("season"), r.Get("week"), table.AsString(r.Get("team")))
			day, ok := gamedays[key]
			if !ok {
				return nil
			}
			born, ok := parseDate(r.Get("birth_date"))
			if !ok {
				return nil
			}
			years := day.Sub(born).Hours() / 24 / 365.25
			return math.Round(years*1000) / 1000
		})
	}
	return t, nil
}

func (c *Client) importRosters(ctx context.Context, years []int, columns []string, weekly bool) (*table.Table, error) {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return nil, err
	}

	dataset := "rosters"
	urlFor := c.src.Roster
	if weekly {
		dataset = "weekly_rosters"
		urlFor = c.src.WeeklyRoster
	}

	var parts []*table.Table
	for _, year := range years {
		data, err := c.fetch.Get(ctx, urlFor(year))
		if err != nil {
			return nil, fmt.Errorf("importing %d rosters: %w", year, err)
		}
		t, err := table.ReadParquet(data)
		if err != nil {
			return nil, fmt.Errorf("importing %d rosters: %w", year, err)
		}
		logger.Info("season imported", logger.Fields{"dataset": dataset, "season": year, "rows": t.Len()})
		parts = append(parts, t)
	}

	out := table.Concat(parts...)
	out.Rename(rosterRenames)

	if len(columns) > 0 {
		return out.Select(columns)
	}
	return out, nil
}

// gamedayIndex maps season, week, and team to the game date, built from the
// schedules file. Both home and away teams index the same game.
func (c *Client) gamedayIndex(ctx context.Context) (map[string]time.Time, error) {
	data, err := c.fetch.Get(ctx, c.src.Schedules)
	if err != nil {
		return nil, fmt.Errorf("importing schedules: %w", err)
	}
	scheds, err := table.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importing schedules: %w", err)
	}

	index := make(map[string]time.Time)
	for i := 0; i < scheds.Len(); i++ {
		day, ok := parseDate(scheds.Cell(i, "gameday"))
		if !ok {
			continue
		}
		season := scheds.Cell(i, "season")
		week := scheds.Cell(i, "week")
		for _, side := range []string{"home_team", "away_team"} {
			team := table.AsString(scheds.Cell(i, side))
			if team != "" {
				index[gamedayKey(season, week, team)] = day
			}
		}
	}
	return index, nil
}

func gamedayKey(season, week any, team string) string {
	s, _ := yearOf(season)
	w, _ := yearOf(week)
	return fmt.Sprintf("%d|%d|%s", s, w, team)
}

// parseDate reads a date cell in the YYYY-MM-DD form the source files use.
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ImportPlayers imports descriptive data for all players.
func (c *Client) ImportPlayers(ctx context.Context) (*table.Table, error) {
	data, err := c.fetch.Get(ctx, c.src.Players())
	if err != nil {
		return nil, fmt.Errorf("importing players: %w", err)
	}
	return table.ReadParquet(data)
}
