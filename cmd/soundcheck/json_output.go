package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"soundcheck/internal/batch"
	"soundcheck/internal/quality"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fileReportJSON is the machine-readable shape for one classified file.
type fileReportJSON struct {
	Path     string            `json:"path,omitempty"`
	Filename string            `json:"filename,omitempty"`
	Verdict  quality.Verdict   `json:"verdict"`
	Metrics  map[string]string `json:"metrics,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func fileReportView(report batch.FileReport) fileReportJSON {
	view := fileReportJSON{
		Path:    report.Path,
		Verdict: report.Verdict,
	}
	if report.Err != nil {
		view.Error = report.Err.Error()
		return view
	}
	if report.Result != nil {
		view.Filename = report.Result.Filename
	}

	metrics := map[string]quality.MetricStatus{
		"normalization":    report.Breakdown.Normalization,
		"reverb":           report.Breakdown.Reverb,
		"noise_floor":      report.Breakdown.NoiseFloor,
		"leading_silence":  report.Breakdown.LeadingSilence,
		"trailing_silence": report.Breakdown.TrailingSilence,
		"longest_silence":  report.Breakdown.LongestSilence,
		"clipping":         report.Breakdown.Clipping,
		"mic_bleed":        report.Breakdown.MicBleed,
		"overlap":          report.Overlap,
	}
	view.Metrics = make(map[string]string, len(metrics))
	for name, status := range metrics {
		if status == quality.StatusUnset {
			continue
		}
		view.Metrics[name] = status.String()
	}
	return view
}
