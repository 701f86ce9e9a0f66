package fetch

import "testing"

func TestSourceURLs(t *testing.T) {
	s := DefaultSources()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"pbp",
			s.PBP(2023),
			"https://github.com/nflverse/nflverse-data/releases/download/pbp/play_by_play_2023.parquet",
		},
		{
			"participation",
			s.Participation(2022),
			"https://github.com/nflverse/nflverse-data/releases/download/pbp_participation/pbp_participation_2022.parquet",
		},
		{
			"player stats",
			s.PlayerStats(2021),
			"https://github.com/nflverse/nflverse-data/releases/download/player_stats/player_stats_2021.parquet",
		},
		{
			"roster",
			s.Roster(2020),
			"https://github.com/nflverse/nflverse-data/releases/download/rosters/roster_2020.parquet",
		},
		{
			"weekly roster",
			s.WeeklyRoster(2020),
			"https://github.com/nflverse/nflverse-data/releases/download/weekly_rosters/roster_weekly_2020.parquet",
		},
		{
			"ngs",
			s.NGS("passing"),
			"https://github.com/nflverse/nflverse-data/releases/download/nextgen_stats/ngs_passing.parquet",
		},
		{
			"pfr season",
			s.PFRSeason("pass"),
			"https://github.com/nflverse/nflverse-data/releases/download/pfr_advstats/advstats_season_pass.parquet",
		},
		{
			"pfr week",
			s.PFRWeek("rush", 2022),
			"https://github.com/nflverse/nflverse-data/releases/download/pfr_advstats/advstats_week_rush_2022.parquet",
		},
		{
			"officials",
			s.Officials(),
			"https://raw.githubusercontent.com/nflverse/nfldata/master/data/officials.csv",
		},
		{
			"sc lines",
			s.SCLines(),
			"https://raw.githubusercontent.com/nflverse/nfldata/master/data/sc_lines.csv",
		},
		{
			"draft values",
			s.DraftValues(),
			"https://raw.githubusercontent.com/nflverse/nfldata/master/data/draft_values.csv",
		},
		{
			"qbr",
			s.QBRFile("nfl", "season"),
			"https://raw.githubusercontent.com/nflverse/espnscrapeR-data/master/data/qbr-nfl-season.csv",
		},
		{
			"asset listing",
			s.AssetListing("pbp"),
			"https://github.com/nflverse/nflverse-data/releases/expanded_assets/pbp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}
