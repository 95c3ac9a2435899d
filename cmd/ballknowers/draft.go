package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
	"github.com/ajuarez99/ballknowers/internal/domain/league"
	"github.com/ajuarez99/ballknowers/internal/report"
)

var (
	errLeagueRequired = errors.New("league id required (--league or SLEEPER_LEAGUE_ID)")
	errDraftRequired  = errors.New("draft id required (--draft or SLEEPER_DRAFT_ID)")
)

type draftOpts struct {
	leagueID string
	draftID  string
	out      string
	preview  int
}

func newDraftCmd(c *cli) *cobra.Command {
	var opts draftOpts

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Write the league draft report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil, func(ctx context.Context, app *bootstrap.App) error {
				return runDraft(ctx, cmd.OutOrStdout(), app, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.leagueID, "league", "", "Sleeper league id (default SLEEPER_LEAGUE_ID)")
	cmd.Flags().StringVar(&opts.draftID, "draft", "", "Sleeper draft id (default SLEEPER_DRAFT_ID)")
	cmd.Flags().StringVar(&opts.out, "out", "draft_report.csv", "CSV output path, or - for stdout")
	cmd.Flags().IntVar(&opts.preview, "preview", 0, "Also print the first N picks")
	return cmd
}

func runDraft(ctx context.Context, out io.Writer, app *bootstrap.App, opts draftOpts) error {
	leagueID := firstNonEmpty(opts.leagueID, app.Config.Sleeper.LeagueID)
	draftID := firstNonEmpty(opts.draftID, app.Config.Sleeper.DraftID)
	if leagueID == "" {
		return errLeagueRequired
	}
	if draftID == "" {
		return errDraftRequired
	}

	rows, err := app.League.DraftReport(ctx, leagueID, draftID)
	if err != nil {
		return err
	}

	if opts.out == "-" {
		return report.WriteDraftCSV(out, rows)
	}
	if err := writeCSVFile(opts.out, rows); err != nil {
		return err
	}
	printPreview(out, rows, opts.preview)
	fmt.Fprintf(out, "Draft report with %d picks saved to: %s\n", len(rows), opts.out)
	return nil
}

func writeCSVFile(path string, rows []league.DraftRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteDraftCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printPreview(out io.Writer, rows []league.DraftRow, n int) {
	if n <= 0 {
		return
	}
	if n > len(rows) {
		n = len(rows)
	}
	for _, r := range rows[:n] {
		fmt.Fprintf(out, "%3d. R%d  %-25s %-10s %s (%s)\n", r.PickNo, r.Round, r.PlayerName, r.TeamPos, r.Username, r.TeamName)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
