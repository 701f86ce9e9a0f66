// Package clean normalizes team and player names across datasets.
//
// Different source files spell the same franchise or player differently:
// abbreviation schemes changed over the years, franchises relocated, and
// player names carry inconsistent suffixes and capitalization. Clean rewrites
// a fixed set of identity columns using static alias tables so values line up
// when merging datasets. Values the tables do not know are passed through
// unchanged, so a cleaned table always has exactly the shape of its input.
package clean
