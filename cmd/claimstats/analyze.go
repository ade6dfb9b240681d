package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimstats/internal/analyze"
	"github.com/gyeh/claimstats/internal/claimread"
	"github.com/gyeh/claimstats/internal/exitcode"
	"github.com/gyeh/claimstats/internal/logging"
	"github.com/gyeh/claimstats/internal/report"
)

var assumptionsPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a claim export and write the JSON report",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claim export file (required)")
	f.StringVar(&cfg.Format, "format", "", "Input format: csv, xlsx, or parquet (default: by file extension)")
	f.StringVar(&cfg.OutputPath, "out", "", "Report output path (default: stdout)")
	f.StringVar(&assumptionsPath, "config", "", "YAML file with projection assumptions")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if assumptionsPath != "" {
		if err := cfg.LoadFromFile(assumptionsPath); err != nil {
			log.Error().Err(err).Msg("assumptions config invalid")
			os.Exit(exitcode.UsageError)
		}
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

	rep, err := analyze.Run(log, cfg.FilePath, raws, cfg.Assumptions)
	if err != nil {
		var pe *analyze.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("analysis failed")
			if pe.Phase == "aggregate" {
				os.Exit(exitcode.ValidationError)
			}
			os.Exit(exitcode.AnalyzeError)
		}
		log.Error().Err(err).Msg("analysis failed")
		os.Exit(exitcode.AnalyzeError)
	}

	if err := report.Write(rep, cfg.OutputPath); err != nil {
		log.Error().Err(err).Msg("writing report failed")
		os.Exit(exitcode.WriteError)
	}

	fmt.Fprintf(os.Stderr, "Analysis complete: %d rows, %d claims (%.1fs)\n",
		rep.Summary.RowsRead, rep.Summary.ClaimCount, rep.Summary.DurationTotal.Seconds())
	return nil
}

func resolveFormat() (claimread.Format, error) {
	if cfg.Format != "" {
		return claimread.ParseFormat(cfg.Format)
	}
	return claimread.DetectFormat(cfg.FilePath)
}
