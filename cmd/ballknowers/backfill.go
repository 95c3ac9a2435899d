package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
)

func newBackfillCmd(c *cli) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Rebuild yesterday's report and fill in missing recent days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil, func(ctx context.Context, app *bootstrap.App) error {
				result := app.Backfiller(days).Run(ctx, c.now())
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Wrote %d report(s)", len(result.Written))
				if len(result.Written) > 0 {
					fmt.Fprintf(out, ": %s", strings.Join(result.Written, ", "))
				}
				fmt.Fprintln(out)
				if len(result.Failed) > 0 {
					fmt.Fprintf(out, "Failed: %s\n", strings.Join(result.Failed, ", "))
				}
				return ctx.Err()
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to check, counting yesterday")
	return cmd
}
