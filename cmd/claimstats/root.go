package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimstats/internal/config"
	"github.com/gyeh/claimstats/internal/exitcode"
)

var (
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "claimstats",
	Short: "Insurance claim export analyzer",
	Long: "Reads row-level insurance claim exports (CSV, XLSX, or Parquet), aggregates them " +
		"into claims, and emits KPI metrics and ROI projections as a JSON report.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
