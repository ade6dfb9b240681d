package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimstats/internal/analyze"
	"github.com/gyeh/claimstats/internal/claimread"
	"github.com/gyeh/claimstats/internal/exitcode"
	"github.com/gyeh/claimstats/internal/logging"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claim export file (required)")
	f.StringVar(&cfg.Format, "format", "", "Input format: csv, xlsx, or parquet (default: by file extension)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ReadError)
	}
	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ReadError)
	}

	format, err := resolveFormat()
	if err != nil {
		log.Error().Err(err).Msg("cannot resolve input format")
		os.Exit(exitcode.UsageError)
	}

	raws, err := claimread.Read(cfg.FilePath, format)
	if err != nil {
		log.Error().Err(err).Msg("reading claim export failed")
		os.Exit(exitcode.ReadError)
	}

	tids := make(map[string]bool)
	statusCounts := make(map[string]int)
	var noTID int
	for _, r := range raws {
		if tid := r[model.ColTID]; tid != "" {
			tids[tid] = true
		} else {
			noTID++
		}
		statusCounts[r[model.ColStatus]]++
	}

	fmt.Println("=== claimstats plan ===")
	fmt.Printf("File:          %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:       %s\n", sha)
	fmt.Printf("Size:          %d bytes\n", stat.Size())
	fmt.Printf("Format:        %s\n", format)
	fmt.Printf("Rows:          %d\n", len(raws))
	fmt.Printf("Distinct TIDs: %d\n", len(tids))
	fmt.Printf("Rows w/o TID:  %d (would be skipped)\n", noTID)
	fmt.Println()

	fmt.Println("Status distribution:")
	statuses := make([]string, 0, len(statusCounts))
	for s := range statusCounts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		label := s
		if label == "" {
			label = "(blank)"
		}
		fmt.Printf("  %-40s %6d\n", label, statusCounts[s])
	}
	fmt.Println()

	if res := analyze.Validate(raws); res.Valid {
		fmt.Println("Column validation: OK")
	} else {
		fmt.Printf("Column validation: FAILED (%s)\n", res.Error)
		os.Exit(exitcode.ValidationError)
	}
	return nil
}
