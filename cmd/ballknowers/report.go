package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/app/dailyreport"
	"github.com/ajuarez99/ballknowers/internal/bootstrap"
	"github.com/ajuarez99/ballknowers/internal/config"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/report"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

const troubleshooting = `
No player data available.

Troubleshooting tips:
1. Check if there were actually NBA games on this date
2. Rerun with --debug and look at the saved HTML to see what Basketball-Reference returned
3. Try visiting the URL directly in your browser
4. Basketball-Reference may be blocking automated requests
`

type reportOpts struct {
	date       string
	top        int
	debug      bool
	noTrending bool
	noSave     bool
}

func newReportCmd(c *cli) *cobra.Command {
	var opts reportOpts

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the daily fantasy report",
		Long: `Fetches every box score for the date, scores and ranks players, matches
Sleeper's trending adds against the day's stat lines and saves the report as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tweak := func(cfg *config.Config) {
				if opts.debug {
					cfg.Log.Level = "debug"
					if cfg.BoxScores.DebugDir == "" {
						cfg.BoxScores.DebugDir = "."
					}
				}
			}
			return c.run(cmd, tweak, func(ctx context.Context, app *bootstrap.App) error {
				return c.runReport(ctx, cmd.OutOrStdout(), app, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", timeutil.Yesterday, "Report date: today, yesterday, day_before or YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Number of ranked players (default from REPORT_TOP_N)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log at debug level and save the raw box score HTML")
	cmd.Flags().BoolVar(&opts.noTrending, "no-trending", false, "Skip the Sleeper trending section")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "Print the report without saving it")

	return cmd
}

func (c *cli) runReport(ctx context.Context, out io.Writer, app *bootstrap.App, opts reportOpts) error {
	logger := logging.FromContext(ctx)
	now := c.now()

	date, err := timeutil.ResolveDate(opts.date, now)
	if err != nil {
		logging.Warn(logger, "invalid date, using yesterday", "input", opts.date, "err", err)
		date = timeutil.DaysAgo(now, 1)
	}
	if parsed, err := timeutil.ParseDate(date); err == nil {
		fmt.Fprintf(out, "\nFetching NBA stats for: %s\n\n", parsed.Format("Monday, January 02, 2006"))
	}

	d, err := app.Reports.Build(ctx, date, dailyreport.Options{Trending: !opts.noTrending, TopN: opts.top})
	if errors.Is(err, dailyreport.ErrNoPlayers) {
		fmt.Fprint(out, troubleshooting)
	}
	if err != nil {
		return err
	}

	if err := report.Render(out, d); err != nil {
		return err
	}
	if opts.noSave {
		return nil
	}

	path, err := app.Writer.WriteReport(date, d)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Fprintf(out, "\nReport saved to: %s\n", path)
	return nil
}
