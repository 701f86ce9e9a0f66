package nfldata

import (
	"context"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// The functions below call the corresponding method on the default client.

// ImportPBP imports play-by-play data using the default client.
func ImportPBP(ctx context.Context, years []int, opts PBPOptions) (*table.Table, error) {
	return Default().ImportPBP(ctx, years, opts)
}

// CachePBP downloads play-by-play seasons into the local cache using the
// default client.
func CachePBP(ctx context.Context, years []int) error {
	return Default().CachePBP(ctx, years)
}

// SeePBPColumns lists play-by-play column names using the default client.
func SeePBPColumns(ctx context.Context) ([]string, error) {
	return Default().SeePBPColumns(ctx)
}

// ImportWeekly imports weekly player stats using the default client.
func ImportWeekly(ctx context.Context, years []int, opts WeeklyOptions) (*table.Table, error) {
	return Default().ImportWeekly(ctx, years, opts)
}

// SeeWeeklyColumns lists weekly stat column names using the default client.
func SeeWeeklyColumns(ctx context.Context) ([]string, error) {
	return Default().SeeWeeklyColumns(ctx)
}

// ImportSeasonal imports aggregated seasonal stats using the default client.
func ImportSeasonal(ctx context.Context, years []int, seasonType string) (*table.Table, error) {
	return Default().ImportSeasonal(ctx, years, seasonType)
}

// ImportSeasonalRosters imports season-level rosters using the default client.
func ImportSeasonalRosters(ctx context.Context, years []int, columns []string) (*table.Table, error) {
	return Default().ImportSeasonalRosters(ctx, years, columns)
}

// ImportWeeklyRosters imports week-level rosters using the default client.
func ImportWeeklyRosters(ctx context.Context, years []int, columns []string) (*table.Table, error) {
	return Default().ImportWeeklyRosters(ctx, years, columns)
}

// ImportPlayers imports the player master file using the default client.
func ImportPlayers(ctx context.Context) (*table.Table, error) {
	return Default().ImportPlayers(ctx)
}

// ImportSchedules imports game schedules and results using the default client.
func ImportSchedules(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportSchedules(ctx, years)
}

// ImportOfficials imports game official assignments using the default client.
func ImportOfficials(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportOfficials(ctx, years)
}

// ImportWinTotals imports preseason win total lines using the default client.
func ImportWinTotals(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportWinTotals(ctx, years)
}

// ImportSCLines imports scoring lines using the default client.
func ImportSCLines(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportSCLines(ctx, years)
}

// ImportDraftPicks imports draft pick history using the default client.
func ImportDraftPicks(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportDraftPicks(ctx, years)
}

// ImportDraftValues imports draft pick value curves using the default client.
func ImportDraftValues(ctx context.Context, picks []int) (*table.Table, error) {
	return Default().ImportDraftValues(ctx, picks)
}

// ImportCombine imports scouting combine results using the default client.
func ImportCombine(ctx context.Context, years []int, positions []string) (*table.Table, error) {
	return Default().ImportCombine(ctx, years, positions)
}

// ImportTeamDesc imports team descriptions using the default client.
func ImportTeamDesc(ctx context.Context) (*table.Table, error) {
	return Default().ImportTeamDesc(ctx)
}

// ImportIDs imports the player ID crosswalk using the default client.
func ImportIDs(ctx context.Context, columns, ids []string) (*table.Table, error) {
	return Default().ImportIDs(ctx, columns, ids)
}

// ImportNGS imports next-gen stats using the default client.
func ImportNGS(ctx context.Context, statType string, years []int) (*table.Table, error) {
	return Default().ImportNGS(ctx, statType, years)
}

// ImportQBR imports ESPN QBR data using the default client.
func ImportQBR(ctx context.Context, years []int, level, frequency string) (*table.Table, error) {
	return Default().ImportQBR(ctx, years, level, frequency)
}

// ImportSeasonalPFR imports season-level advanced stats using the default
// client.
func ImportSeasonalPFR(ctx context.Context, statType string, years []int) (*table.Table, error) {
	return Default().ImportSeasonalPFR(ctx, statType, years)
}

// ImportWeeklyPFR imports week-level advanced stats using the default client.
func ImportWeeklyPFR(ctx context.Context, statType string, years []int) (*table.Table, error) {
	return Default().ImportWeeklyPFR(ctx, statType, years)
}

// ImportSnapCounts imports weekly snap counts using the default client.
func ImportSnapCounts(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportSnapCounts(ctx, years)
}

// ImportDepthCharts imports team depth charts using the default client.
func ImportDepthCharts(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportDepthCharts(ctx, years)
}

// ImportInjuries imports team injury reports using the default client.
func ImportInjuries(ctx context.Context, years []int) (*table.Table, error) {
	return Default().ImportInjuries(ctx, years)
}

// ImportContracts imports historical contract data using the default client.
func ImportContracts(ctx context.Context) (*table.Table, error) {
	return Default().ImportContracts(ctx)
}

// ImportFTN imports FTN play charting data using the default client.
func ImportFTN(ctx context.Context, years []int, opts FTNOptions) (*table.Table, error) {
	return Default().ImportFTN(ctx, years, opts)
}

// ListAssets lists release assets using the default client.
func ListAssets(ctx context.Context, release string) ([]Asset, error) {
	return Default().ListAssets(ctx, release)
}
