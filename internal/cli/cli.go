package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	nfldata "github.com/pfrederiksen/nfl-data"
	"github.com/pfrederiksen/nfl-data/internal/config"
	"github.com/pfrederiksen/nfl-data/internal/logger"
	"github.com/pfrederiksen/nfl-data/pkg/clean"
	"github.com/pfrederiksen/nfl-data/pkg/table"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYears         string
	flagColumns       string
	flagFormat        string
	flagOutput        string
	flagCacheDir      string
	flagNoCache       bool
	flagVerbose       bool
	flagDowncast      bool
	flagParticipation bool
	flagClean         bool
	flagStatType      string
	flagLevel         string
	flagFrequency     string
	flagSeasonType    string
	flagPositions     string
	flagPicks         string
	flagIDs           string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfl-data",
		Short: "Import NFL datasets hosted by the nflverse",
		Long: `A CLI tool to download NFL datasets hosted by the nflverse and
related projects. Imports play-by-play, weekly, seasonal, roster, schedule,
draft, and betting data as CSV or JSON.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "Cache directory (default from config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newColumnsCmd())
	cmd.AddCommand(newCacheCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newAssetsCmd())

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <dataset>",
		Short: "Import a dataset and write it to stdout or a file",
		Long: `Import a dataset. Available datasets:
  ` + strings.Join(datasetNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringVar(&flagYears, "years", "", "Comma-separated seasons, e.g. 2022,2023")
	cmd.Flags().StringVar(&flagColumns, "columns", "", "Comma-separated column subset")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&flagDowncast, "downcast", false, "Downcast float columns to save memory")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the local file cache")
	cmd.Flags().BoolVar(&flagParticipation, "participation", false, "Merge participation data (pbp only)")
	cmd.Flags().BoolVar(&flagClean, "clean", false, "Standardize names and team abbreviations")
	cmd.Flags().StringVar(&flagStatType, "stat-type", "", "Stat type for ngs and pfr datasets")
	cmd.Flags().StringVar(&flagLevel, "level", "nfl", "QBR level: nfl or college")
	cmd.Flags().StringVar(&flagFrequency, "frequency", "season", "QBR frequency: season or weekly")
	cmd.Flags().StringVar(&flagSeasonType, "season-type", "REG", "Season type for seasonal: REG, POST, or ALL")
	cmd.Flags().StringVar(&flagPositions, "positions", "", "Comma-separated positions (combine only)")
	cmd.Flags().StringVar(&flagPicks, "picks", "", "Comma-separated pick numbers (draft-values only)")
	cmd.Flags().StringVar(&flagIDs, "ids", "", "Comma-separated ID systems (ids only)")

	return cmd
}

// runImport is the main command logic
func runImport(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	importer, ok := datasets[name]
	if !ok {
		return fmt.Errorf("unknown dataset: %s (available: %s)", name, strings.Join(datasetNames(), ", "))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatCSV && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'csv' or 'json')", flagFormat)
	}

	params, err := parseParams()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	start := time.Now()
	t, err := importer(cmd.Context(), client, params)
	if err != nil {
		return fmt.Errorf("importing %s: %w", name, err)
	}
	logger.RecordTiming("cli.import", time.Since(start))

	if flagClean {
		clean.Clean(t)
	}

	logger.Info("dataset imported", logger.Fields{
		"dataset": name,
		"rows":    t.Len(),
		"columns": len(t.Columns()),
	})

	return writeOut(t, format)
}

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns <pbp|weekly>",
		Short: "List the column names of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var cols []string
			switch strings.ToLower(args[0]) {
			case "pbp":
				cols, err = client.SeePBPColumns(cmd.Context())
			case "weekly":
				cols, err = client.SeeWeeklyColumns(cmd.Context())
			default:
				return fmt.Errorf("unknown dataset: %s (must be 'pbp' or 'weekly')", args[0])
			}
			if err != nil {
				return err
			}

			for _, col := range cols {
				fmt.Println(col)
			}
			return nil
		},
	}
	return cmd
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache <years...>",
		Short: "Download play-by-play seasons into the local cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := parseYears(strings.Join(args, ","))
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.CachePBP(cmd.Context(), years); err != nil {
				return fmt.Errorf("caching play-by-play: %w", err)
			}
			fmt.Printf("Cached %d seasons.\n", len(years))
			return nil
		},
	}
	return cmd
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <file.csv>",
		Short: "Standardize names and team abbreviations in a CSV file",
		Long: `Read a CSV file, standardize player names, college team names, and
team abbreviations, and write the result. Recognized columns:
  ` + strings.Join(clean.EligibleColumns(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			t, err := table.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			clean.Clean(t)
			return writeOut(t, FormatCSV)
		},
	}
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output file (default stdout)")
	return cmd
}

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets <release>",
		Short: "List the downloadable files attached to an nflverse release",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			assets, err := client.ListAssets(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("listing assets: %w", err)
			}

			for _, a := range assets {
				fmt.Printf("%s\t%s\n", a.Name, a.URL)
			}
			return nil
		},
	}
	return cmd
}

// newClient builds a client from the loaded configuration and flags.
func newClient() (*nfldata.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	} else {
		logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))
	}

	cacheDir := cfg.CacheDir
	if flagCacheDir != "" {
		cacheDir = flagCacheDir
	}

	opts := []nfldata.Option{
		nfldata.WithCacheDir(cacheDir),
		nfldata.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, nfldata.WithUserAgent(cfg.UserAgent))
	}

	return nfldata.New(opts...)
}

// parseParams converts the import flags into importer parameters.
func parseParams() (params, error) {
	var p params
	var err error

	if p.Years, err = parseYears(flagYears); err != nil {
		return p, err
	}
	if p.Picks, err = parseInts(flagPicks); err != nil {
		return p, err
	}

	p.Columns = splitList(flagColumns)
	p.Positions = splitList(flagPositions)
	p.IDs = splitList(flagIDs)
	p.Downcast = flagDowncast
	p.UseCache = !flagNoCache
	p.Participation = flagParticipation

	// The participation merge only runs on live downloads, so honoring the
	// cache here would drop the requested columns.
	if p.Participation && p.UseCache {
		logger.Warn("bypassing cache to merge participation data", nil)
		p.UseCache = false
	}
	p.StatType = flagStatType
	p.Level = flagLevel
	p.Frequency = flagFrequency
	p.SeasonType = strings.ToUpper(flagSeasonType)

	return p, nil
}

func parseYears(s string) ([]int, error) {
	years, err := parseInts(s)
	if err != nil {
		return nil, fmt.Errorf("invalid years: %w", err)
	}
	return years, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("not a number: %s", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// writeOut writes the table to the --output file or stdout.
func writeOut(t *table.Table, format OutputFormat) error {
	w := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return WriteTable(w, t, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
