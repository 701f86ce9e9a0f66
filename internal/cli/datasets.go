package cli

import (
	"context"
	"sort"

	nfldata "github.com/pfrederiksen/nfl-data"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// params carries the parsed import flags to an importer.
type params struct {
	Years         []int
	Columns       []string
	Positions     []string
	IDs           []string
	Picks         []int
	Downcast      bool
	UseCache      bool
	Participation bool
	StatType      string
	Level         string
	Frequency     string
	SeasonType    string
}

type importer func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error)

// datasets maps CLI dataset names to their importers.
var datasets = map[string]importer{
	"pbp": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportPBP(ctx, p.Years, nfldata.PBPOptions{
			Columns:              p.Columns,
			IncludeParticipation: p.Participation,
			Downcast:             p.Downcast,
			UseCache:             p.UseCache,
		})
	},
	"weekly": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportWeekly(ctx, p.Years, nfldata.WeeklyOptions{
			Columns:  p.Columns,
			Downcast: p.Downcast,
		})
	},
	"seasonal": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSeasonal(ctx, p.Years, p.SeasonType)
	},
	"rosters": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSeasonalRosters(ctx, p.Years, p.Columns)
	},
	"weekly-rosters": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportWeeklyRosters(ctx, p.Years, p.Columns)
	},
	"players": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportPlayers(ctx)
	},
	"schedules": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSchedules(ctx, p.Years)
	},
	"officials": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportOfficials(ctx, p.Years)
	},
	"win-totals": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportWinTotals(ctx, p.Years)
	},
	"sc-lines": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSCLines(ctx, p.Years)
	},
	"draft-picks": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportDraftPicks(ctx, p.Years)
	},
	"draft-values": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportDraftValues(ctx, p.Picks)
	},
	"combine": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportCombine(ctx, p.Years, p.Positions)
	},
	"teams": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportTeamDesc(ctx)
	},
	"ids": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportIDs(ctx, p.Columns, p.IDs)
	},
	"ngs": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportNGS(ctx, p.StatType, p.Years)
	},
	"qbr": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportQBR(ctx, p.Years, p.Level, p.Frequency)
	},
	"seasonal-pfr": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSeasonalPFR(ctx, p.StatType, p.Years)
	},
	"weekly-pfr": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportWeeklyPFR(ctx, p.StatType, p.Years)
	},
	"snap-counts": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportSnapCounts(ctx, p.Years)
	},
	"depth-charts": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportDepthCharts(ctx, p.Years)
	},
	"injuries": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportInjuries(ctx, p.Years)
	},
	"contracts": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportContracts(ctx)
	},
	"ftn": func(ctx context.Context, c *nfldata.Client, p params) (*table.Table, error) {
		return c.ImportFTN(ctx, p.Years, nfldata.FTNOptions{
			Columns:  p.Columns,
			Downcast: p.Downcast,
		})
	},
}

// datasetNames returns the registered dataset names in sorted order.
func datasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
