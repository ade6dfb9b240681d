package model

import "time"

// AnalysisSummary captures run metadata from a single analysis invocation.
type AnalysisSummary struct {
	RunID       string `json:"runId"`
	SourceFile  string `json:"sourceFile,omitempty"`
	RowsRead    int    `json:"rowsRead"`
	RowsSkipped int    `json:"rowsSkipped"` // rows dropped for missing TID
	ClaimCount  int    `json:"claimCount"`

	DurationNormalize time.Duration `json:"-"`
	DurationAggregate time.Duration `json:"-"`
	DurationMetrics   time.Duration `json:"-"`
	DurationProject   time.Duration `json:"-"`
	DurationTotal     time.Duration `json:"-"`

	ElapsedMillis int64 `json:"elapsedMillis"`
}

// AnalysisReport is the full output bundle handed to the renderer.
type AnalysisReport struct {
	Summary    AnalysisSummary  `json:"summary"`
	Validation ValidationResult `json:"validation"`
	Metrics    *MetricsSnapshot `json:"metrics,omitempty"`
	Projection *ROIProjection   `json:"roiProjection,omitempty"`
}
