package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

func newShowCmd(c *cli) *cobra.Command {
	var (
		date string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a saved report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil, func(ctx context.Context, app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				if list {
					m, err := app.Store.Manifest()
					if err != nil {
						return err
					}
					for _, d := range m.Reports.Dates {
						fmt.Fprintln(out, d)
					}
					return nil
				}

				resolved, err := timeutil.ResolveDate(date, c.now())
				if err != nil {
					return err
				}
				d, err := app.Store.LoadReport(resolved)
				if err != nil {
					return fmt.Errorf("load report for %s: %w", resolved, err)
				}
				return report.Render(out, d)
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", timeutil.Yesterday, "Report date: today, yesterday, day_before or YYYY-MM-DD")
	cmd.Flags().BoolVar(&list, "list", false, "List saved report dates instead")
	return cmd
}
