package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soundcheck/internal/preset"
)

func newAdmitCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string

	cmd := &cobra.Command{
		Use:   "admit <filename> [more...]",
		Short: "Check whether filenames pass the active preset's admission gate",
		Long: `Check filenames against the active preset's file-type allow-set and, when
the preset declares one, its filename naming policy. Run this before fetching
or analyzing files to avoid wasted transfers.

Exits non-zero when any filename is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			prefs := loadPreferences(cfg, ctx.ensureLogger())
			id, presetCfg, ok := activePreset(presetFlag, prefs, cfg)
			if !ok {
				return fmt.Errorf("unknown preset %q (run 'soundcheck presets list')", id)
			}

			rejected := 0
			out := cmd.OutOrStdout()
			for _, filename := range args {
				switch {
				case !preset.Admit(filename, presetCfg.FileTypes):
					rejected++
					fmt.Fprintf(out, "%s: rejected (file type)\n", filename)
				case !preset.ValidFilename(presetCfg.FilenameMode, filename):
					rejected++
					fmt.Fprintf(out, "%s: rejected (filename pattern, mode %s)\n", filename, presetCfg.FilenameMode)
				default:
					fmt.Fprintf(out, "%s: admitted\n", filename)
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d filename(s) rejected by preset %s", rejected, len(args), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Preset identifier (defaults to the stored selection)")
	return cmd
}
