package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"soundcheck/internal/batch"
	"soundcheck/internal/quality"
)

// ColorEnabled resolves the configured color mode ("auto", "always",
// "never") against the current stdout.
func ColorEnabled(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// metricRows fixes the badge display order.
var metricRows = []struct {
	label  string
	status func(quality.Breakdown) quality.MetricStatus
}{
	{"Normalization", func(b quality.Breakdown) quality.MetricStatus { return b.Normalization }},
	{"Reverb", func(b quality.Breakdown) quality.MetricStatus { return b.Reverb }},
	{"Noise floor", func(b quality.Breakdown) quality.MetricStatus { return b.NoiseFloor }},
	{"Leading silence", func(b quality.Breakdown) quality.MetricStatus { return b.LeadingSilence }},
	{"Trailing silence", func(b quality.Breakdown) quality.MetricStatus { return b.TrailingSilence }},
	{"Longest silence", func(b quality.Breakdown) quality.MetricStatus { return b.LongestSilence }},
	{"Clipping", func(b quality.Breakdown) quality.MetricStatus { return b.Clipping }},
	{"Mic bleed", func(b quality.Breakdown) quality.MetricStatus { return b.MicBleed }},
}

// RenderFile renders the per-metric badge table and verdict for one report.
func RenderFile(report batch.FileReport, color bool) string {
	var sb strings.Builder

	name := report.Path
	if report.Result != nil && report.Result.Filename != "" {
		name = report.Result.Filename
	}
	fmt.Fprintf(&sb, "%s: %s\n", name, verdictCell(report.Verdict, color))

	if report.Err != nil {
		fmt.Fprintf(&sb, "  %v\n", report.Err)
		return sb.String()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Status"})
	for _, row := range metricRows {
		status := row.status(report.Breakdown)
		if status == quality.StatusUnset {
			continue
		}
		tw.AppendRow(table.Row{row.label, statusCell(status, color)})
	}
	if report.Overlap != quality.StatusUnset {
		tw.AppendRow(table.Row{"Speech overlap", statusCell(report.Overlap, color)})
	}
	sb.WriteString(tw.Render())
	sb.WriteString("\n")
	return sb.String()
}

// RenderSummary renders one row per file plus run totals.
func RenderSummary(summary *batch.Summary, color bool) string {
	var sb strings.Builder

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Verdict", "Worst Metric"})
	for _, report := range summary.Reports {
		name := report.Path
		if report.Result != nil && report.Result.Filename != "" {
			name = report.Result.Filename
		}
		tw.AppendRow(table.Row{name, verdictCell(report.Verdict, color), worstMetricLabel(report)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	sb.WriteString(tw.Render())
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "run %s: %d files, %d passed, %d warnings, %d failed, %d errors\n",
		summary.RunID, summary.Total(), summary.Passed, summary.Warned, summary.Failed, summary.Errored)
	return sb.String()
}

// worstMetricLabel names the most severe metric for quick scanning, or ""
// when everything succeeded.
func worstMetricLabel(report batch.FileReport) string {
	if report.Err != nil {
		return "unreadable result"
	}
	worstLabel := ""
	worst := quality.StatusSuccess
	for _, row := range metricRows {
		status := row.status(report.Breakdown)
		if status > worst {
			worst = status
			worstLabel = row.label
		}
	}
	if report.Overlap > worst {
		worstLabel = "Speech overlap"
	}
	return worstLabel
}

func statusCell(status quality.MetricStatus, color bool) string {
	label := status.String()
	if !color {
		return label
	}
	switch status {
	case quality.StatusSuccess:
		return text.FgGreen.Sprint(label)
	case quality.StatusWarning:
		return text.FgYellow.Sprint(label)
	case quality.StatusError:
		return text.FgRed.Sprint(label)
	default:
		return label
	}
}

func verdictCell(verdict quality.Verdict, color bool) string {
	label := string(verdict)
	if !color {
		return label
	}
	switch verdict {
	case quality.VerdictPass:
		return text.FgGreen.Sprint(label)
	case quality.VerdictWarning:
		return text.FgYellow.Sprint(label)
	case quality.VerdictFail:
		return text.FgRed.Sprint(label)
	case quality.VerdictError:
		return text.FgHiRed.Sprint(label)
	default:
		return label
	}
}
