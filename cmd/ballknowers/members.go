package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
)

func newMembersCmd(c *cli) *cobra.Command {
	var (
		draftID   string
		usernames []string
	)

	cmd := &cobra.Command{
		Use:   "members",
		Short: "Look up league members and who made each draft pick",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, nil, func(ctx context.Context, app *bootstrap.App) error {
				names := usernames
				if len(names) == 0 {
					names = app.Config.Sleeper.Members
				}
				if len(names) == 0 {
					return fmt.Errorf("no members given (--members or LEAGUE_MEMBERS)")
				}

				out := cmd.OutOrStdout()
				members := app.League.Members(ctx, names)
				fmt.Fprintln(out, "\nLeague Members:")
				for _, m := range members {
					fmt.Fprintf(out, "%s - User ID: %s\n", m.Username, m.UserID)
				}

				id := firstNonEmpty(draftID, app.Config.Sleeper.DraftID)
				if id == "" {
					return nil
				}
				picks, err := app.League.DraftPicksByMember(ctx, id, members)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "\nDraft Picks with Users:")
				for _, p := range picks {
					fmt.Fprintln(out, p.String())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&draftID, "draft", "", "Sleeper draft id (default SLEEPER_DRAFT_ID)")
	cmd.Flags().StringSliceVar(&usernames, "members", nil, "Comma-separated Sleeper usernames (default LEAGUE_MEMBERS)")
	return cmd
}
