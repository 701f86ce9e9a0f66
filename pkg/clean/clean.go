package clean

import (
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// missingMarker is the literal some source files use for an absent value.
const missingMarker = "NA"

// target binds a set of eligible column names to an ordered chain of alias
// tables. Earlier tables win: the first table containing the cell value
// supplies the canonical form.
type target struct {
	columns []string
	tables  []map[string]string
}

var targets = []target{
	{columns: []string{"name", "player_name"}, tables: []map[string]string{playerNames}},
	{columns: []string{"col_team"}, tables: []map[string]string{collegeTeams}},
	{columns: []string{"team", "recent_team"}, tables: []map[string]string{teamRelocations, teamAbbreviations}},
}

// Clean canonicalizes team and player identity values in place and returns t.
//
// Only the eligible columns are touched; other columns, the row count, and
// the column order are left exactly as they were. A value with no alias entry
// passes through unchanged: cleaning is best-effort against a known alias
// set, never an error. The literal "NA" in an eligible column becomes a
// missing value. Columns a table does not define are silently skipped.
func Clean(t *table.Table) *table.Table {
	for _, tg := range targets {
		for _, col := range tg.columns {
			if !t.HasColumn(col) {
				continue
			}
			for i := 0; i < t.Len(); i++ {
				s, ok := t.Cell(i, col).(string)
				if !ok {
					continue
				}
				if s == missingMarker {
					t.SetCell(i, col, nil)
					continue
				}
				for _, aliases := range tg.tables {
					if canonical, ok := aliases[s]; ok {
						t.SetCell(i, col, canonical)
						break
					}
				}
			}
		}
	}
	return t
}

// EligibleColumns returns the column names Clean may rewrite.
func EligibleColumns() []string {
	var out []string
	for _, tg := range targets {
		out = append(out, tg.columns...)
	}
	return out
}
