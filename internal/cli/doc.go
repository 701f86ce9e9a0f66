// Package cli implements the command-line interface for nfl-data.
//
// The cli package provides the Cobra-based CLI with subcommands for importing
// datasets (CSV/JSON output), listing dataset columns, pre-caching
// play-by-play seasons, standardizing names in CSV files, and listing
// nflverse release assets. It coordinates the root nfldata client, the config
// loader, and the table package to fetch, shape, and write datasets.
package cli
