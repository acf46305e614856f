package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"soundcheck/internal/prefstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent batch classification runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := prefstore.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.RecentRuns(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Started", "Preset", "Total", "Pass", "Warn", "Fail", "Error", "Run ID"})
			for _, record := range records {
				tw.AppendRow(table.Row{
					record.StartedAt.Local().Format(time.DateTime),
					record.Preset,
					record.Total, record.Passed, record.Warned, record.Failed, record.Errored,
					record.ID,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")
	return cmd
}
