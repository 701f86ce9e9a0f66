package nfldata

import (
	"errors"
	"fmt"

	"github.com/pfrederiksen/nfl-data/internal/fetch"
	"github.com/pfrederiksen/nfl-data/pkg/table"
)

// ErrSeasonOutOfRange marks a request for a season before the earliest one a
// dataset covers. It is returned before any I/O is attempted.
var ErrSeasonOutOfRange = errors.New("season out of range")

// ErrUnknownColumn marks a column filter naming a column the dataset does not
// define.
var ErrUnknownColumn = table.ErrUnknownColumn

// ErrNotFound marks a file the host does not have.
var ErrNotFound = fetch.ErrNotFound

// validateYears checks that at least one year was requested and that none
// precedes the dataset's earliest season.
func validateYears(years []int, earliest int) error {
	if len(years) == 0 {
		return errors.New("at least one year must be provided")
	}
	for _, y := range years {
		if y < earliest {
			return fmt.Errorf("%w: no data available before %d", ErrSeasonOutOfRange, earliest)
		}
	}
	return nil
}

// without returns cols with the named columns removed.
func without(cols []string, names ...string) []string {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	var out []string
	for _, c := range cols {
		if !drop[c] {
			out = append(out, c)
		}
	}
	return out
}

// ensure returns cols with the named columns appended if absent.
func ensure(cols []string, names ...string) []string {
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	out := append([]string(nil), cols...)
	for _, n := range names {
		if !have[n] {
			out = append(out, n)
		}
	}
	return out
}

// containsInt reports whether years contains y.
func containsInt(years []int, y int) bool {
	for _, x := range years {
		if x == y {
			return true
		}
	}
	return false
}

// yearOf converts a season cell value to an int.
func yearOf(v any) (int, bool) {
	f, ok := table.AsFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}
