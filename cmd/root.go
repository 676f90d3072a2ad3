// Package cmd implements the nsfgrants CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"nsfgrants/internal/config"
	"nsfgrants/internal/logging"
	"nsfgrants/internal/model"
	"nsfgrants/internal/pipeline"
	"nsfgrants/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDataDir   string
	flagYear      int
	flagNoCache   bool
	flagFromClean string
	flagQuiet     bool
	flagVerbose   bool

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nsfgrants",
	Short: "NSF grant award explorer",
	Long:  "Combine yearly NSF award exports, join terminations and election results, and explore the result in an interactive dashboard.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if !cmd.Flags().Changed("data-dir") && cfg.General.DataDir != "" {
			flagDataDir = cfg.General.DataDir
		}
		if !cmd.Flags().Changed("year") && cfg.General.DefaultYear != 0 {
			flagYear = cfg.General.DefaultYear
		}
		if flagYear < model.FirstYear || flagYear > model.LastYear {
			return fmt.Errorf("year %d outside reporting window %d-%d", flagYear, model.FirstYear, model.LastYear)
		}

		// The dashboard owns the terminal, so its logs go to a file
		if cmd.Name() == "dashboard" || cmd.Name() == cmd.Root().Name() {
			log, err = logging.NewFile(filepath.Join(pipeline.CacheDir(), "nsfgrants.log"), flagVerbose)
		} else {
			log, err = logging.New(flagVerbose)
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "data", "Directory with yearly exports and CSV inputs")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", model.LastYear, "Reporting year")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().StringVar(&flagFromClean, "from-clean", "", "Load a previously exported cleaned CSV instead of the raw inputs")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// buildInputs resolves every pipeline input path from flags and config.
func buildInputs() pipeline.Inputs {
	years := cfg.General.Years
	if len(years) == 0 {
		for y := model.FirstYear; y <= model.LastYear; y++ {
			years = append(years, y)
		}
	}
	return pipeline.Inputs{
		DataDir:          flagDataDir,
		Years:            years,
		TerminationFile:  filepath.Join(flagDataDir, cfg.Files.Terminations),
		Election2020File: filepath.Join(flagDataDir, cfg.Files.Election2020),
		Election2024File: filepath.Join(flagDataDir, cfg.Files.Election2024),
		CleanFile:        flagFromClean,
	}
}

// loadData is the shared pipeline path used by the data commands.
// Uses the SQLite cache when available for fast subsequent runs.
func loadData() (*pipeline.LoadResult, error) {
	in := buildInputs()

	if in.CleanFile != "" {
		result, err := pipeline.LoadClean(in.CleanFile, log)
		if err != nil {
			return nil, err
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Loaded %d grants from %s\n", len(result.Records), in.CleanFile)
		}
		return result, nil
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Parsing exports [%d/%d]", current, total)
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()
			cr, err := pipeline.LoadWithCache(in, cache, log, progressFn)
			if err != nil {
				return nil, err
			}
			if !flagQuiet {
				if cr.CacheHit {
					fmt.Fprintf(os.Stderr, "  Loaded %d grants from cache\n", len(cr.Records))
				} else {
					fmt.Fprintf(os.Stderr, "\r  Parsed %d exports, %d grants    \n", cr.ParsedFiles, len(cr.Records))
				}
			}
			return &cr.LoadResult, nil
		}
	}

	result, err := pipeline.Load(in, log, progressFn)
	if err != nil {
		return nil, err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "\r  Parsed %d exports, %d grants    \n", result.ParsedFiles, len(result.Records))
	}
	return result, nil
}
