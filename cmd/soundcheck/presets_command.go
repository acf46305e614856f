package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"soundcheck/internal/prefstore"
	"soundcheck/internal/preset"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Preset catalog utilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPresetsListCommand(ctx))
	cmd.AddCommand(newPresetsShowCommand(ctx))
	cmd.AddCommand(newPresetsSelectCommand(ctx))
	return cmd
}

func newPresetsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			prefs := loadPreferences(cfg, ctx.ensureLogger())
			registry := preset.NewRegistry(prefs.custom)
			active := resolvePresetID("", prefs, cfg)

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Name", "File Types", "Active"})
			for _, id := range registry.IDs() {
				presetCfg, ok := registry.Lookup(id)
				if !ok {
					continue
				}
				marker := ""
				if id == active {
					marker = "*"
				}
				tw.AppendRow(table.Row{id, presetCfg.Name, strings.Join(presetCfg.FileTypes, ", "), marker})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}
}

func newPresetsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one preset's criteria",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			prefs := loadPreferences(cfg, ctx.ensureLogger())
			registry := preset.NewRegistry(prefs.custom)

			presetCfg, ok := registry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			if jsonFlag {
				return writeJSON(cmd, presetCfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", presetCfg.Name, args[0])
			printAllowSet(out, "file types", presetCfg.FileTypes)
			printAllowSet(out, "sample rates", presetCfg.SampleRates)
			printAllowSet(out, "bit depths", presetCfg.BitDepths)
			printAllowSet(out, "channels", presetCfg.Channels)
			if presetCfg.MinDuration != "" {
				fmt.Fprintf(out, "  min duration: %ss\n", presetCfg.MinDuration)
			}
			if presetCfg.FilenameMode != preset.FilenameModeNone {
				fmt.Fprintf(out, "  filename mode: %s\n", presetCfg.FilenameMode)
			}
			if presetCfg.HasOverlapCriteria() {
				printAllowSet(out, "stereo types", presetCfg.StereoTypes)
				fmt.Fprintf(out, "  overlap warn/fail: %.1f%% / %.1f%%, %.1fs / %.1fs\n",
					presetCfg.OverlapWarnPercent, presetCfg.OverlapFailPercent,
					presetCfg.OverlapWarnSeconds, presetCfg.OverlapFailSeconds)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")
	return cmd
}

func newPresetsSelectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Persist the active preset selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			prefs := loadPreferences(cfg, ctx.ensureLogger())
			registry := preset.NewRegistry(prefs.custom)
			if _, ok := registry.Lookup(args[0]); !ok {
				return fmt.Errorf("unknown preset %q (run 'soundcheck presets list')", args[0])
			}

			store, err := prefstore.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetSelectedPreset(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected preset %s\n", args[0])
			return nil
		},
	}
}

func printAllowSet(out interface{ Write([]byte) (int, error) }, label string, tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintf(out, "  %s: any\n", label)
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", label, strings.Join(tokens, ", "))
}
