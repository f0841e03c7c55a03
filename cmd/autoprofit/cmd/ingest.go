package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autoprofit/internal/config"
	"autoprofit/pkg/logger"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion cycle and exit",
	Long: "Fetches the latest scraper items, upserts listings by VIN, and " +
		"matches and scores each against the appraisal benchmarks.",
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	eng, st, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	stats, err := eng.RunIngestion(ctx)
	if err != nil {
		return fmt.Errorf("ingestion: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"fetched %d, upserted %d, skipped %d, errors %d\n",
		stats.Fetched, stats.Upserted, stats.Skipped, stats.Errors,
	)
	return nil
}
