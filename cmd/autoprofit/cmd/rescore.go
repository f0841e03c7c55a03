package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autoprofit/internal/config"
	"autoprofit/pkg/logger"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Re-match and re-score every stored listing",
	RunE:  runRescore,
}

func init() {
	rootCmd.AddCommand(rescoreCmd)
}

func runRescore(cmd *cobra.Command, _ []string) error {
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

	rescored, err := eng.RescoreAll(ctx)
	if err != nil {
		return fmt.Errorf("rescore: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rescored %d listings\n", rescored)
	return nil
}
