package table

import (
	"errors"
	"testing"
)

func mustAppend(t *testing.T, tbl *Table, vals ...any) {
	t.Helper()
	if err := tbl.AppendRow(vals...); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
}

func TestSelect(t *testing.T) {
	tbl := New("a", "b", "c")
	mustAppend(t, tbl, int64(1), "x", 1.5)
	mustAppend(t, tbl, int64(2), "y", 2.5)

	got, err := tbl.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if cols := got.Columns(); len(cols) != 2 || cols[0] != "c" || cols[1] != "a" {
		t.Errorf("expected columns [c a], got %v", cols)
	}
	if got.Cell(1, "c") != 2.5 {
		t.Errorf("expected 2.5, got %v", got.Cell(1, "c"))
	}
	if got.Cell(0, "a") != int64(1) {
		t.Errorf("expected 1, got %v", got.Cell(0, "a"))
	}
}

func TestSelectUnknownColumn(t *testing.T) {
	tbl := New("a")
	_, err := tbl.Select([]string{"nope"})
	if !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestConcatUnionsColumns(t *testing.T) {
	a := New("season", "yards")
	mustAppend(t, a, int64(2022), int64(100))
	b := New("season", "touchdowns")
	mustAppend(t, b, int64(2023), int64(3))

	got := Concat(a, b)
	if cols := got.Columns(); len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %v", cols)
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if got.Cell(0, "touchdowns") != nil {
		t.Errorf("expected missing touchdowns in first row, got %v", got.Cell(0, "touchdowns"))
	}
	if got.Cell(1, "yards") != nil {
		t.Errorf("expected missing yards in second row, got %v", got.Cell(1, "yards"))
	}
	if got.Cell(1, "touchdowns") != int64(3) {
		t.Errorf("expected 3, got %v", got.Cell(1, "touchdowns"))
	}
}

func TestSetConstAppendsColumn(t *testing.T) {
	tbl := New("a")
	mustAppend(t, tbl, "x")
	tbl.SetConst("season", int64(2020))

	if !tbl.HasColumn("season") {
		t.Fatal("expected season column to be added")
	}
	if tbl.Cell(0, "season") != int64(2020) {
		t.Errorf("expected 2020, got %v", tbl.Cell(0, "season"))
	}
}

func TestGroupBySum(t *testing.T) {
	tbl := New("player_id", "yards")
	mustAppend(t, tbl, "00-001", int64(10))
	mustAppend(t, tbl, "00-002", 5.0)
	mustAppend(t, tbl, "00-001", 7.5)
	mustAppend(t, tbl, "00-001", nil)

	got, err := tbl.GroupBySum([]string{"player_id"}, []string{"yards"})
	if err != nil {
		t.Fatalf("GroupBySum: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", got.Len())
	}
	if got.Cell(0, "yards") != 17.5 {
		t.Errorf("expected 17.5, got %v", got.Cell(0, "yards"))
	}
	if got.Cell(1, "yards") != 5.0 {
		t.Errorf("expected 5, got %v", got.Cell(1, "yards"))
	}
}

func TestGroupByCount(t *testing.T) {
	tbl := New("player_id", "week")
	mustAppend(t, tbl, "00-001", int64(1))
	mustAppend(t, tbl, "00-001", int64(2))
	mustAppend(t, tbl, "00-002", int64(1))

	got, err := tbl.GroupByCount([]string{"player_id"}, "games")
	if err != nil {
		t.Fatalf("GroupByCount: %v", err)
	}
	if got.Cell(0, "games") != int64(2) {
		t.Errorf("expected 2 games, got %v", got.Cell(0, "games"))
	}
	if got.Cell(1, "games") != int64(1) {
		t.Errorf("expected 1 game, got %v", got.Cell(1, "games"))
	}
}

func TestLeftJoin(t *testing.T) {
	left := New("game_id", "play_id", "yards")
	mustAppend(t, left, "2022_01_BUF_LA", int64(1), int64(5))
	mustAppend(t, left, "2022_01_BUF_LA", int64(2), int64(0))

	right := New("nflverse_game_id", "play_id", "formation")
	mustAppend(t, right, "2022_01_BUF_LA", int64(1), "SHOTGUN")

	got, err := LeftJoin(left, right, []string{"game_id", "play_id"}, []string{"nflverse_game_id", "play_id"})
	if err != nil {
		t.Fatalf("LeftJoin: %v", err)
	}
	if got.HasColumn("nflverse_game_id") {
		t.Error("expected right key columns to be dropped")
	}
	if got.Cell(0, "formation") != "SHOTGUN" {
		t.Errorf("expected SHOTGUN, got %v", got.Cell(0, "formation"))
	}
	if got.Cell(1, "formation") != nil {
		t.Errorf("expected missing formation for unmatched row, got %v", got.Cell(1, "formation"))
	}
}

func TestLeftJoinNumericKeyNormalization(t *testing.T) {
	left := New("season", "team")
	mustAppend(t, left, int64(2022), "BUF")

	right := New("season", "coach")
	mustAppend(t, right, 2022.0, "McDermott")

	got, err := LeftJoin(left, right, []string{"season"}, []string{"season"})
	if err != nil {
		t.Fatalf("LeftJoin: %v", err)
	}
	if got.Cell(0, "coach") != "McDermott" {
		t.Errorf("expected int64 and float64 season keys to match, got %v", got.Cell(0, "coach"))
	}
}

func TestDropDuplicates(t *testing.T) {
	tbl := New("player_id", "week")
	mustAppend(t, tbl, "00-001", int64(1))
	mustAppend(t, tbl, "00-001", int64(2))
	mustAppend(t, tbl, "00-002", int64(1))

	got := tbl.DropDuplicates([]string{"player_id"})
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if got.Cell(0, "week") != int64(1) {
		t.Errorf("expected first occurrence kept, got week %v", got.Cell(0, "week"))
	}
}

func TestDropMissing(t *testing.T) {
	tbl := New("game_id", "total")
	mustAppend(t, tbl, "2022_01", 44.5)
	mustAppend(t, tbl, nil, 41.0)

	got := tbl.DropMissing([]string{"game_id"})
	if got.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", got.Len())
	}
}

func TestUnique(t *testing.T) {
	tbl := New("season")
	mustAppend(t, tbl, int64(2022))
	mustAppend(t, tbl, int64(2023))
	mustAppend(t, tbl, int64(2022))

	got := tbl.Unique("season")
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %v", got)
	}
	if got[0] != int64(2022) || got[1] != int64(2023) {
		t.Errorf("expected first-seen order, got %v", got)
	}
}

func TestDowncastFloats(t *testing.T) {
	tbl := New("epa", "name", "yards")
	mustAppend(t, tbl, 0.25, "a", int64(10))
	mustAppend(t, tbl, nil, "b", int64(5))

	tbl.DowncastFloats()

	if _, ok := tbl.Cell(0, "epa").(float32); !ok {
		t.Errorf("expected float32, got %T", tbl.Cell(0, "epa"))
	}
	if tbl.Cell(1, "epa") != nil {
		t.Errorf("expected missing cell untouched, got %v", tbl.Cell(1, "epa"))
	}
	if _, ok := tbl.Cell(0, "yards").(int64); !ok {
		t.Errorf("expected int64 column untouched, got %T", tbl.Cell(0, "yards"))
	}
}

func TestRename(t *testing.T) {
	tbl := New("gsis_id", "full_name")
	mustAppend(t, tbl, "00-001", "Josh Allen")
	tbl.Rename(map[string]string{"gsis_id": "player_id", "full_name": "player_name"})

	if !tbl.HasColumn("player_id") || tbl.HasColumn("gsis_id") {
		t.Errorf("expected rename, got columns %v", tbl.Columns())
	}
	if tbl.Cell(0, "player_id") != "00-001" {
		t.Errorf("expected values preserved, got %v", tbl.Cell(0, "player_id"))
	}
}

func TestApplyAppendsColumn(t *testing.T) {
	tbl := New("a", "b")
	mustAppend(t, tbl, 2.0, 4.0)
	tbl.Apply("ratio", func(r Row) any {
		a, _ := AsFloat(r.Get("a"))
		b, _ := AsFloat(r.Get("b"))
		return a / b
	})

	if tbl.Cell(0, "ratio") != 0.5 {
		t.Errorf("expected 0.5, got %v", tbl.Cell(0, "ratio"))
	}
}

func TestFilter(t *testing.T) {
	tbl := New("season_type")
	mustAppend(t, tbl, "REG")
	mustAppend(t, tbl, "POST")

	got := tbl.Filter(func(r Row) bool { return r.Get("season_type") == "REG" })
	if got.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", got.Len())
	}
}
