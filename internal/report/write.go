// Package report serializes analysis output for the downstream renderer.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gyeh/claimstats/internal/model"
)

// Write marshals the report as indented JSON to path, or to stdout when
// path is empty. The JSON field names are the renderer's binding contract.
func Write(r *model.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
