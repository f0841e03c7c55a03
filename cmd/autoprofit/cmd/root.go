// Package cmd implements the CLI commands for autoprofit.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "autoprofit",
	Short: "Find profitable used-vehicle deals",
	Long: "A service that ingests scraped used-vehicle listings, matches them " +
		"against curated benchmark appraisals, estimates acquisition costs " +
		"(shipping, reconditioning, packing), and categorizes each deal by margin.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
