package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tanq16/precosteo/internal/config"
	"github.com/tanq16/precosteo/internal/ledger"
	"github.com/tanq16/precosteo/internal/report"
	"github.com/tanq16/precosteo/internal/summary"
)

var (
	flagConfig         string
	flagLedger         string
	flagSheet          string
	flagLocations      string
	flagLocationsSheet string
	flagCode           string
	flagFrom           string
	flagTo             string
	flagSummary        string
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "precosteo",
		Short: "Generates a precosteo PDF from an activity ledger",
		Long: "Builds a cost-estimate (precosteo) PDF for maintenance contracts: " +
			"letterhead, narrative summary, place of execution and the billable " +
			"activity table filtered by date range.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flagConfig, "config", "", "optional YAML config file")
	root.Flags().StringVar(&flagLedger, "ledger", "", "activity ledger (.xlsx or .csv); empty uses the configured database")
	root.Flags().StringVar(&flagSheet, "sheet", "", "ledger worksheet name (default: first sheet)")
	root.Flags().StringVar(&flagLocations, "locations", "", "locations table (.xlsx or .csv; default: second sheet of the ledger workbook)")
	root.Flags().StringVar(&flagLocationsSheet, "locations-sheet", "", "locations worksheet name")
	root.Flags().StringVar(&flagCode, "code", "", "precosteo reference code (required)")
	root.Flags().StringVar(&flagFrom, "from", "", "range start date (required)")
	root.Flags().StringVar(&flagTo, "to", "", "range end date (required)")
	root.Flags().StringVar(&flagSummary, "summary", "", "narrative text, or @file; empty asks Gemini to draft it")
	_ = root.MarkFlagRequired("code")
	_ = root.MarkFlagRequired("from")
	_ = root.MarkFlagRequired("to")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("precosteo generation failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	dateRange, err := ledger.NewDateRange(flagFrom, flagTo)
	if err != nil {
		return err
	}

	activities, err := loadLedger(cfg)
	if err != nil {
		return err
	}
	log.Info().Int("rows", activities.Len()).Msg("ledger loaded")
	if ledger.DetectDateMode(activities) == ledger.DateModeNone {
		log.Warn().Msg("no date column detected; the ledger passes through unfiltered")
	}

	locations, err := loadLocations()
	if err != nil {
		return err
	}

	text, err := narrative(ctx, cfg, activities, dateRange)
	if err != nil {
		return err
	}

	layout := report.DefaultLayout()
	layout.TemplatesDir = cfg.TemplatesDir
	layout.OutputDir = cfg.OutputDir
	layout.OutputPrefix = cfg.OutputPrefix

	canvas, err := report.NewCanvas(layout)
	if err != nil {
		return err
	}
	if err := report.Compose(canvas, report.Input{
		Code:          flagCode,
		Summary:       text,
		Locations:     locations,
		Ledger:        activities,
		Range:         dateRange,
		ExcludedItems: cfg.ExcludedItems,
	}); err != nil {
		return err
	}

	path, err := canvas.Save(flagCode)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("precosteo generated")
	return nil
}

// loadLedger picks the activity source: an .xlsx or .csv file when --ledger
// is given, else the configured PostgreSQL ledger.
func loadLedger(cfg *config.Config) (*ledger.Table, error) {
	if flagLedger == "" {
		if cfg.LedgerDBURL == "" {
			return nil, fmt.Errorf("no ledger source: pass --ledger or configure ledger_db_url")
		}
		db, err := ledger.OpenPostgres(cfg.LedgerDBURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return ledger.LoadPostgres(db, cfg.LedgerQuery)
	}
	switch strings.ToLower(filepath.Ext(flagLedger)) {
	case ".csv":
		return ledger.LoadCSV(flagLedger)
	default:
		return ledger.LoadXLSX(flagLedger, flagSheet)
	}
}

// loadLocations reads the locations table. Without --locations it falls
// back to the second sheet of the ledger workbook when one exists.
func loadLocations() (*ledger.Table, error) {
	if flagLocations != "" {
		if strings.ToLower(filepath.Ext(flagLocations)) == ".csv" {
			return ledger.LoadCSV(flagLocations)
		}
		return ledger.LoadXLSX(flagLocations, flagLocationsSheet)
	}
	if flagLedger != "" && strings.ToLower(filepath.Ext(flagLedger)) == ".xlsx" {
		sheet := flagLocationsSheet
		if sheet == "" {
			names, err := ledger.SheetNames(flagLedger)
			if err != nil || len(names) < 2 {
				return ledger.NewTable(nil), nil
			}
			sheet = names[1]
		}
		return ledger.LoadXLSX(flagLedger, sheet)
	}
	return ledger.NewTable(nil), nil
}

// narrative returns the caller-supplied summary (--summary text or @file),
// or asks the Gemini collaborator to draft one.
func narrative(ctx context.Context, cfg *config.Config, activities *ledger.Table, r ledger.DateRange) (string, error) {
	if strings.HasPrefix(flagSummary, "@") {
		data, err := os.ReadFile(flagSummary[1:])
		if err != nil {
			return "", fmt.Errorf("failed to read summary file: %v", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if flagSummary != "" {
		return flagSummary, nil
	}

	gen, err := summary.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return "", err
	}
	log.Info().Str("model", cfg.GeminiModel).Msg("drafting narrative summary")
	return gen.Summarize(ctx, summary.Request{
		Ledger:        activities,
		Range:         r,
		ExcludedItems: cfg.ExcludedItems,
	})
}
