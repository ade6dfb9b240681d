// Package analyze orchestrates the claim analysis pipeline:
// normalize → aggregate → metrics → projection.
package analyze

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimstats/internal/aggregate"
	"github.com/gyeh/claimstats/internal/metrics"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/normalize"
	"github.com/gyeh/claimstats/internal/projection"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Validate runs required-column validation over a raw table and returns the
// renderer-facing result without executing the rest of the pipeline.
func Validate(raws []model.RawRecord) model.ValidationResult {
	return aggregate.Validate(raws)
}

// Run executes the full analysis pipeline over one in-memory table. The
// whole run is synchronous and side-effect free apart from logging; the
// returned report is a freshly derived value every time.
func Run(log zerolog.Logger, sourceFile string, raws []model.RawRecord, a projection.Assumptions) (*model.AnalysisReport, error) {
	totalStart := time.Now()
	runID := uuid.New().String()

	summary := model.AnalysisSummary{
		RunID:      runID,
		SourceFile: sourceFile,
		RowsRead:   len(raws),
	}

	// Phase 1: normalize. Total by construction, nothing to fail.
	start := time.Now()
	rows := normalize.ToNormalizedRecords(raws)
	for _, r := range rows {
		if r.TID == "" {
			summary.RowsSkipped++
		}
	}
	summary.DurationNormalize = time.Since(start)
	log.Info().
		Str("run_id", runID).
		Int("rows", len(rows)).
		Int("rows_without_tid", summary.RowsSkipped).
		Dur("duration", summary.DurationNormalize).
		Msg("normalize complete")

	// Phase 2: aggregate (validates required columns first).
	start = time.Now()
	claims, err := aggregate.Aggregate(rows)
	if err != nil {
		return nil, &PipelineError{Phase: "aggregate", Err: err}
	}
	summary.ClaimCount = len(claims)
	summary.DurationAggregate = time.Since(start)
	log.Info().
		Int("claims", len(claims)).
		Dur("duration", summary.DurationAggregate).
		Msg("aggregation complete")

	// Phase 3: metrics.
	start = time.Now()
	snapshot := metrics.Compute(rows, claims)
	summary.DurationMetrics = time.Since(start)
	log.Info().
		Float64("total_claim_value", snapshot.TotalClaimValue).
		Float64("denial_rate", snapshot.DenialRate).
		Float64("health_score", snapshot.HealthScore).
		Dur("duration", summary.DurationMetrics).
		Msg("metrics computed")

	// Phase 4: projection.
	start = time.Now()
	proj := projection.Project(snapshot, a)
	summary.DurationProject = time.Since(start)
	log.Info().
		Float64("expected_total", proj.Total.Expected).
		Int("payback_months", proj.PaybackMonths).
		Dur("duration", summary.DurationProject).
		Msg("projection complete")

	summary.DurationTotal = time.Since(totalStart)
	summary.ElapsedMillis = summary.DurationTotal.Milliseconds()

	log.Info().
		Int("rows", summary.RowsRead).
		Int("claims", summary.ClaimCount).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("analysis pipeline complete")

	return &model.AnalysisReport{
		Summary:    summary,
		Validation: model.ValidationResult{Valid: true},
		Metrics:    snapshot,
		Projection: proj,
	}, nil
}
