package nfldata

import (
	"context"
	"math"
	"testing"

	"github.com/pfrederiksen/nfl-data/pkg/table"
)

type weeklyStatRow struct {
	PlayerID   string  `parquet:"player_id"`
	PlayerName string  `parquet:"player_name"`
	RecentTeam string  `parquet:"recent_team"`
	Season     int64   `parquet:"season"`
	Week       int64   `parquet:"week"`
	SeasonType string  `parquet:"season_type"`
	Attempts   float64 `parquet:"attempts"`
	Comps      float64 `parquet:"completions"`
	PassYds    float64 `parquet:"passing_yards"`
	PassTDs    float64 `parquet:"passing_tds"`
	PassAirYds float64 `parquet:"passing_air_yards"`
	PassYAC    float64 `parquet:"passing_yards_after_catch"`
	PassFDs    float64 `parquet:"passing_first_downs"`
	Carries    float64 `parquet:"carries"`
	RushYds    float64 `parquet:"rushing_yards"`
	RushTDs    float64 `parquet:"rushing_tds"`
	RushFDs    float64 `parquet:"rushing_first_downs"`
	Rush2Pt    float64 `parquet:"rushing_2pt_conversions"`
	Receptions float64 `parquet:"receptions"`
	Targets    float64 `parquet:"targets"`
	RecYds     float64 `parquet:"receiving_yards"`
	RecTDs     float64 `parquet:"receiving_tds"`
	RecAirYds  float64 `parquet:"receiving_air_yards"`
	RecYAC     float64 `parquet:"receiving_yards_after_catch"`
	RecFDs     float64 `parquet:"receiving_first_downs"`
	RecEPA     float64 `parquet:"receiving_epa"`
	PPR        float64 `parquet:"fantasy_points_ppr"`
}

func seasonalFixture() []weeklyStatRow {
	qb := func(week int64, seasonType string) weeklyStatRow {
		return weeklyStatRow{
			PlayerID: "00-QB", PlayerName: "Test Quarterback", RecentTeam: "BUF",
			Season: 2022, Week: week, SeasonType: seasonType,
			Attempts: 10, Comps: 7, PassYds: 250, PassTDs: 2,
			PassAirYds: 100, PassYAC: 80, PassFDs: 10, PPR: 20,
		}
	}
	wr := func(week int64, seasonType string) weeklyStatRow {
		return weeklyStatRow{
			PlayerID: "00-WR", PlayerName: "Test Receiver", RecentTeam: "BUF",
			Season: 2022, Week: week, SeasonType: seasonType,
			Receptions: 5, Targets: 5, RecYds: 100, RecTDs: 1,
			RecAirYds: 50, RecYAC: 40, RecFDs: 5, RecEPA: 3, PPR: 25,
		}
	}
	return []weeklyStatRow{
		qb(1, "REG"), wr(1, "REG"),
		qb(2, "REG"), wr(2, "REG"),
		qb(20, "POST"), wr(20, "POST"),
	}
}

func seasonalRow(t *testing.T, tbl *table.Table, playerID string) int {
	t.Helper()
	for i := 0; i < tbl.Len(); i++ {
		if tbl.Cell(i, "player_id") == playerID {
			return i
		}
	}
	t.Fatalf("no row for player %s", playerID)
	return -1
}

func TestImportSeasonal(t *testing.T) {
	ts := newTestServer(t)
	ts.files["/release/player_stats/player_stats_2022.parquet"] = marshalParquet(t, seasonalFixture())

	c := ts.client(t)
	got, err := c.ImportSeasonal(context.Background(), []int{2022}, SeasonTypeRegular)
	if err != nil {
		t.Fatalf("ImportSeasonal: %v", err)
	}

	if got.Len() != 2 {
		t.Fatalf("expected one row per player, got %d", got.Len())
	}

	wr := seasonalRow(t, got, "00-WR")

	// Two regular-season weeks of 100 receiving yards; the postseason week
	// is excluded by the REG filter.
	if yds, _ := got.Cell(wr, "receiving_yards").(float64); yds != 200 {
		t.Errorf("expected 200 receiving yards, got %v", got.Cell(wr, "receiving_yards"))
	}
	if got.Cell(wr, "games") != int64(2) {
		t.Errorf("expected 2 games, got %v", got.Cell(wr, "games"))
	}

	approx := func(col string, want float64) {
		t.Helper()
		f, ok := got.Cell(wr, col).(float64)
		if !ok || math.Abs(f-want) > 1e-9 {
			t.Errorf("expected %s = %v, got %v", col, want, got.Cell(wr, col))
		}
	}
	// 10 targets against 20 team attempts, 100 air yards against 200.
	approx("tgt_sh", 0.5)
	approx("ay_sh", 0.5)
	approx("wopr", 0.5*1.5+0.5*0.8)
	// 200 receiving yards against 500 team passing yards.
	approx("ry_sh", 0.4)
	approx("rtd_sh", 0.5)
	approx("dom", (0.4+0.5)/2)
	approx("w8dom", 0.4*0.8+0.5*0.2)
	approx("yptmpa", 200.0/20)
}

func TestImportSeasonalAllIncludesPostseason(t *testing.T) {
	ts := newTestServer(t)
	ts.files["/release/player_stats/player_stats_2022.parquet"] = marshalParquet(t, seasonalFixture())

	c := ts.client(t)
	got, err := c.ImportSeasonal(context.Background(), []int{2022}, SeasonTypeAll)
	if err != nil {
		t.Fatalf("ImportSeasonal: %v", err)
	}

	// REG and POST rows stay separate groups, so each player appears twice.
	if got.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", got.Len())
	}
}

func TestImportSeasonalInvalidType(t *testing.T) {
	ts := newTestServer(t)
	c := ts.client(t)

	if _, err := c.ImportSeasonal(context.Background(), []int{2022}, "PRE"); err == nil {
		t.Error("expected error for invalid season type")
	}
}
