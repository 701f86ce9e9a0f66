package nfldata

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// Season types accepted by ImportSeasonal.
const (
	SeasonTypeRegular = "REG"
	SeasonTypePost    = "POST"
	SeasonTypeAll     = "ALL"
)

// teamWeekRenames maps the per-team passing aggregates to their short names.
var teamWeekRenames = map[string]string{
	"attempts":                    "atts",
	"completions":                 "comps",
	"passing_yards":               "p_yds",
	"passing_tds":                 "p_tds",
	"passing_air_yards":           "p_ayds",
	"passing_yards_after_catch":   "p_yac",
	"passing_first_downs":         "p_fds",
	"fantasy_points_ppr":          "ppr_pts",
}

// ImportSeasonal imports seasonal player stats for the given seasons,
// aggregated from the weekly files. seasonType selects which games count:
// REG, POST, or ALL. The result carries per-player season totals, a games
// count, and derived share stats (target share, air-yards share, WOPR, and
// the rest of the receiving dominator family) computed against the player's
// team totals.
func (c *Client) ImportSeasonal(ctx context.Context, years []int, seasonType string) (*table.Table, error) {
	if err := validateYears(years, earliestPBPSeason); err != nil {
		return nil, err
	}
	if seasonType != SeasonTypeRegular && seasonType != SeasonTypePost && seasonType != SeasonTypeAll {
		return nil, fmt.Errorf("season type must be one of %s, %s, %s", SeasonTypeRegular, SeasonTypeAll, SeasonTypePost)
	}

	data, err := c.loadPlayerStats(ctx, years)
	if err != nil {
		return nil, err
	}
	if seasonType != SeasonTypeAll {
		data = data.Filter(func(r table.Row) bool {
			return r.Get("season_type") == seasonType
		})
	}

	shares, err := playerShareStats(data)
	if err != nil {
		return nil, err
	}

	// Season totals per player and season type, plus a games-played count.
	base := data.DropColumns("recent_team", "week")
	keys := []string{"player_id", "season", "season_type"}
	szn, err := base.GroupBySum(keys, without(base.NumericColumns(), "season"))
	if err != nil {
		return nil, err
	}
	games, err := base.GroupByCount([]string{"player_id", "season"}, "games")
	if err != nil {
		return nil, err
	}
	szn, err = table.LeftJoin(szn, games,
		[]string{"player_id", "season"}, []string{"player_id", "season"})
	if err != nil {
		return nil, err
	}

	shareCols := append([]string{"player_id", "season"}, shareStatNames...)
	sel, err := shares.Select(shareCols)
	if err != nil {
		return nil, err
	}
	return table.LeftJoin(szn, sel,
		[]string{"player_id", "season"}, []string{"player_id", "season"})
}

// shareStatNames are the derived per-season receiving stats, in output order.
var shareStatNames = []string{
	"tgt_sh", "ay_sh", "yac_sh", "wopr", "ry_sh", "rtd_sh",
	"rfd_sh", "rtdfd_sh", "dom", "w8dom", "yptmpa", "ppr_sh",
}

// playerShareStats computes each player's season receiving shares against the
// passing totals of their team's weeks.
func playerShareStats(data *table.Table) (*table.Table, error) {
	teamKeys := []string{"recent_team", "season", "week"}
	teamStats, err := data.GroupBySum(teamKeys, []string{
		"attempts", "completions", "passing_yards", "passing_tds",
		"passing_air_yards", "passing_yards_after_catch", "passing_first_downs",
		"fantasy_points_ppr",
	})
	if err != nil {
		return nil, err
	}
	teamStats.Rename(teamWeekRenames)

	playerWeeks, err := data.Select([]string{
		"player_id", "player_name", "recent_team", "season", "week",
		"carries", "rushing_yards", "rushing_tds", "rushing_first_downs",
		"rushing_2pt_conversions", "receptions", "targets", "receiving_yards",
		"receiving_tds", "receiving_air_yards", "receiving_yards_after_catch",
		"receiving_first_downs", "receiving_epa", "fantasy_points_ppr",
	})
	if err != nil {
		return nil, err
	}
	joined, err := table.LeftJoin(playerWeeks, teamStats, teamKeys, teamKeys)
	if err != nil {
		return nil, err
	}
	joined.FillMissing([]string{"atts", "comps", "p_yds", "p_tds", "p_ayds", "p_yac", "p_fds", "ppr_pts"}, float64(0))

	totals := joined.DropColumns("recent_team", "week")
	stats, err := totals.GroupBySum([]string{"player_id", "season"},
		without(totals.NumericColumns(), "season"))
	if err != nil {
		return nil, err
	}

	num := func(r table.Row, col string) float64 {
		f, _ := table.AsFloat(r.Get(col))
		return f
	}
	ratio := func(numCol, denCol string) func(table.Row) any {
		return func(r table.Row) any {
			return num(r, numCol) / num(r, denCol)
		}
	}

	stats.Apply("tgt_sh", ratio("targets", "atts"))
	stats.Apply("ay_sh", ratio("receiving_air_yards", "p_ayds"))
	stats.Apply("yac_sh", ratio("receiving_yards_after_catch", "p_yac"))
	stats.Apply("wopr", func(r table.Row) any {
		return num(r, "tgt_sh")*1.5 + num(r, "ay_sh")*0.8
	})
	stats.Apply("ry_sh", ratio("receiving_yards", "p_yds"))
	stats.Apply("rtd_sh", ratio("receiving_tds", "p_tds"))
	stats.Apply("rfd_sh", ratio("receiving_first_downs", "p_fds"))
	stats.Apply("rtdfd_sh", func(r table.Row) any {
		return (num(r, "receiving_tds") + num(r, "receiving_first_downs")) /
			(num(r, "p_tds") + num(r, "p_fds"))
	})
	stats.Apply("dom", func(r table.Row) any {
		return (num(r, "ry_sh") + num(r, "rtd_sh")) / 2
	})
	stats.Apply("w8dom", func(r table.Row) any {
		return num(r, "ry_sh")*0.8 + num(r, "rtd_sh")*0.2
	})
	stats.Apply("yptmpa", ratio("receiving_yards", "atts"))
	stats.Apply("ppr_sh", ratio("fantasy_points_ppr", "ppr_pts"))

	return stats, nil
}
