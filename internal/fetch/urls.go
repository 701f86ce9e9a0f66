package fetch

import "fmt"

// Sources holds the locations the datasets are served from. The zero value is
// not usable; start from DefaultSources. Tests point the fields at a local
// server.
type Sources struct {
	// Release is the base URL for nflverse release assets.
	Release string
	// AssetIndex is the base URL for the expanded release asset listings.
	AssetIndex string
	// NFLData is the base URL for the nflverse/nfldata csv files.
	NFLData string
	// Schedules is the full URL of the games file.
	Schedules string
	// TeamDesc is the full URL of the team descriptions file.
	TeamDesc string
	// WinTotals is the full URL of the betting lines and odds file.
	WinTotals string
	// PlayerIDs is the full URL of the cross-provider id mapping file.
	PlayerIDs string
	// QBR is the base URL for the ESPN QBR csv files.
	QBR string
}

// DefaultSources returns the public data hosts.
func DefaultSources() Sources {
	return Sources{
		Release:    "https://github.com/nflverse/nflverse-data/releases/download",
		AssetIndex: "https://github.com/nflverse/nflverse-data/releases/expanded_assets",
		NFLData:    "https://raw.githubusercontent.com/nflverse/nfldata/master/data",
		Schedules:  "http://www.habitatring.com/games.csv",
		TeamDesc:   "https://github.com/nflverse/nflfastR-data/raw/master/teams_colors_logos.csv",
		WinTotals:  "https://raw.githubusercontent.com/mrcaseb/nfl-data/master/data/nfl_lines_odds.csv.gz",
		PlayerIDs:  "https://raw.githubusercontent.com/dynastyprocess/data/master/files/db_playerids.csv",
		QBR:        "https://raw.githubusercontent.com/nflverse/espnscrapeR-data/master/data",
	}
}

// PBP returns the play-by-play file for a season.
func (s Sources) PBP(year int) string {
	return fmt.Sprintf("%s/pbp/play_by_play_%d.parquet", s.Release, year)
}

// Participation returns the play participation file for a season.
func (s Sources) Participation(year int) string {
	return fmt.Sprintf("%s/pbp_participation/pbp_participation_%d.parquet", s.Release, year)
}

// PlayerStats returns the weekly player stats file for a season.
func (s Sources) PlayerStats(year int) string {
	return fmt.Sprintf("%s/player_stats/player_stats_%d.parquet", s.Release, year)
}

// Roster returns the end-of-season roster file for a season.
func (s Sources) Roster(year int) string {
	return fmt.Sprintf("%s/rosters/roster_%d.parquet", s.Release, year)
}

// WeeklyRoster returns the week-by-week roster file for a season.
func (s Sources) WeeklyRoster(year int) string {
	return fmt.Sprintf("%s/weekly_rosters/roster_weekly_%d.parquet", s.Release, year)
}

// Players returns the player descriptions file.
func (s Sources) Players() string {
	return fmt.Sprintf("%s/players/players.parquet", s.Release)
}

// Contracts returns the historical contracts file.
func (s Sources) Contracts() string {
	return fmt.Sprintf("%s/contracts/historical_contracts.parquet", s.Release)
}

// DraftPicks returns the draft pick history file.
func (s Sources) DraftPicks() string {
	return fmt.Sprintf("%s/draft_picks/draft_picks.parquet", s.Release)
}

// Combine returns the combine results file.
func (s Sources) Combine() string {
	return fmt.Sprintf("%s/combine/combine.parquet", s.Release)
}

// NGS returns the next-gen stats file for a stat type.
func (s Sources) NGS(statType string) string {
	return fmt.Sprintf("%s/nextgen_stats/ngs_%s.parquet", s.Release, statType)
}

// DepthCharts returns the depth charts file for a season.
func (s Sources) DepthCharts(year int) string {
	return fmt.Sprintf("%s/depth_charts/depth_charts_%d.parquet", s.Release, year)
}

// Injuries returns the injury reports file for a season.
func (s Sources) Injuries(year int) string {
	return fmt.Sprintf("%s/injuries/injuries_%d.parquet", s.Release, year)
}

// SnapCounts returns the snap counts file for a season.
func (s Sources) SnapCounts(year int) string {
	return fmt.Sprintf("%s/snap_counts/snap_counts_%d.parquet", s.Release, year)
}

// FTN returns the FTN charting file for a season.
func (s Sources) FTN(year int) string {
	return fmt.Sprintf("%s/ftn_charting/ftn_charting_%d.parquet", s.Release, year)
}

// PFRSeason returns the season-level advanced stats file for a stat type.
func (s Sources) PFRSeason(statType string) string {
	return fmt.Sprintf("%s/pfr_advstats/advstats_season_%s.parquet", s.Release, statType)
}

// PFRWeek returns the week-level advanced stats file for a stat type and season.
func (s Sources) PFRWeek(statType string, year int) string {
	return fmt.Sprintf("%s/pfr_advstats/advstats_week_%s_%d.parquet", s.Release, statType, year)
}

// Officials returns the game officials file.
func (s Sources) Officials() string {
	return fmt.Sprintf("%s/officials.csv", s.NFLData)
}

// SCLines returns the weekly scoring lines file.
func (s Sources) SCLines() string {
	return fmt.Sprintf("%s/sc_lines.csv", s.NFLData)
}

// DraftValues returns the draft pick value models file.
func (s Sources) DraftValues() string {
	return fmt.Sprintf("%s/draft_values.csv", s.NFLData)
}

// QBRFile returns the QBR file for a level (nfl, college) and frequency
// (season, weekly).
func (s Sources) QBRFile(level, frequency string) string {
	return fmt.Sprintf("%s/qbr-%s-%s.csv", s.QBR, level, frequency)
}

// AssetListing returns the expanded asset listing page for a release.
func (s Sources) AssetListing(release string) string {
	return fmt.Sprintf("%s/%s", s.AssetIndex, release)
}
