package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundcheck/internal/analysis"
	"soundcheck/internal/batch"
	"soundcheck/internal/preset"
	"soundcheck/internal/quality"
	"soundcheck/internal/report"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "classify <result.json> [more...]",
		Short: "Classify analyzer result documents against the active preset",
		Args:  cobra.MinimumNArgs(1),
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

			var views []fileReportJSON
			color := report.ColorEnabled(cfg.Report.Color)
			for _, path := range args {
				fileReport := classifyOne(path, presetCfg)
				if jsonFlag {
					views = append(views, fileReportView(fileReport))
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), report.RenderFile(fileReport, color))
			}
			if jsonFlag {
				return writeJSON(cmd, views)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Preset identifier (defaults to the stored selection)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

func classifyOne(path string, presetCfg preset.Config) batch.FileReport {
	result, err := analysis.LoadFile(path)
	if err != nil {
		return batch.FileReport{Path: path, Verdict: quality.VerdictError, Err: err}
	}
	fileReport := batch.Classify(result, presetCfg)
	fileReport.Path = path
	return fileReport
}
