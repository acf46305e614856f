package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"soundcheck/internal/batch"
	"soundcheck/internal/config"
	"soundcheck/internal/logging"
	"soundcheck/internal/prefstore"
	"soundcheck/internal/report"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string
	var jsonFlag bool
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Classify every result document in a directory",
		Long: `Classify every analyzer result document (*.json) in a directory against
the active preset, concurrently, and print a run summary. The run is recorded
in the preference store unless --no-record is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			prefs := loadPreferences(cfg, logger)
			id, presetCfg, ok := activePreset(presetFlag, prefs, cfg)
			if !ok {
				return fmt.Errorf("unknown preset %q (run 'soundcheck presets list')", id)
			}

			paths, err := batch.DiscoverResults(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no result documents found in %s", args[0])
			}

			summary, err := batch.Run(cmd.Context(), paths, id, presetCfg, cfg.Batch.Workers, logger)
			if err != nil {
				return err
			}

			if !noRecord {
				recordRun(cfg, logger, summary)
			}

			if jsonFlag {
				views := make([]fileReportJSON, 0, len(summary.Reports))
				for _, fileReport := range summary.Reports {
					views = append(views, fileReportView(fileReport))
				}
				return writeJSON(cmd, map[string]any{
					"run_id":  summary.RunID,
					"preset":  summary.PresetID,
					"total":   summary.Total(),
					"passed":  summary.Passed,
					"warned":  summary.Warned,
					"failed":  summary.Failed,
					"errored": summary.Errored,
					"files":   views,
				})
			}

			color := report.ColorEnabled(cfg.Report.Color)
			fmt.Fprint(cmd.OutOrStdout(), report.RenderSummary(summary, color))
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Preset identifier (defaults to the stored selection)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip recording the run in the preference store")
	return cmd
}

// recordRun persists the batch summary. Store unavailability is logged, not
// fatal; the classification output already went to the user.
func recordRun(cfg *config.Config, logger *slog.Logger, summary *batch.Summary) {
	store, err := prefstore.Open(cfg)
	if err != nil {
		logging.NewComponentLogger(logger, "cli").Warn("run not recorded",
			logging.Error(err),
			logging.String(logging.FieldEventType, "run_record_skipped"),
		)
		return
	}
	defer store.Close()

	record := prefstore.RunRecord{
		ID:        summary.RunID,
		Preset:    summary.PresetID,
		StartedAt: summary.StartedAt,
		Total:     summary.Total(),
		Passed:    summary.Passed,
		Warned:    summary.Warned,
		Failed:    summary.Failed,
		Errored:   summary.Errored,
	}
	if err := store.RecordRun(context.Background(), record); err != nil {
		logging.NewComponentLogger(logger, "cli").Warn("run not recorded",
			logging.Error(err),
			logging.String(logging.FieldEventType, "run_record_failed"),
		)
	}
}
