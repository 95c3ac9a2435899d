package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
)

func newMatchupsCmd(c *cli) *cobra.Command {
	var (
		leagueID string
		week     int
	)

	cmd := &cobra.Command{
		Use:   "matchups",
		Short: "Print a week's head-to-head matchups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil, func(ctx context.Context, app *bootstrap.App) error {
				id := firstNonEmpty(leagueID, app.Config.Sleeper.LeagueID)
				if id == "" {
					return errLeagueRequired
				}
				if week <= 0 {
					return fmt.Errorf("week must be positive, got %d", week)
				}

				groups, err := app.League.Matchups(ctx, id, week)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Week %d matchups:\n", week)
				for _, g := range groups {
					label := fmt.Sprintf("Matchup %d", g.MatchupID)
					if g.MatchupID == 0 {
						label = "Unpaired"
					}
					fmt.Fprintf(out, "\n%s\n", label)
					for _, s := range g.Sides {
						fmt.Fprintf(out, "  %-20s %-20s %8.2f\n", s.Owner, s.TeamName, s.Points)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&leagueID, "league", "", "Sleeper league id (default SLEEPER_LEAGUE_ID)")
	cmd.Flags().IntVar(&week, "week", 0, "Matchup week (required)")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}
