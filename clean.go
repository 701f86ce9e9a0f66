package nfldata

import (
	"github.com/pfrederiksen/nfl-data/pkg/clean"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// Clean standardizes player names, college team names, and team
// abbreviations in place and returns the same table. Columns outside the
// recognized set are left untouched.
func Clean(t *table.Table) *table.Table {
	return clean.Clean(t)
}
