// Package main provides the ballknowers CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajuarez99/ballknowers/internal/bootstrap"
	"github.com/ajuarez99/ballknowers/internal/config"
	"github.com/ajuarez99/ballknowers/internal/logging"
)

var version = "dev"

// cli carries the process-level hooks commands share, so tests can swap them.
type cli struct {
	loadConfig func() config.Config
	newApp     func(ctx context.Context, cfg config.Config) (*bootstrap.App, error)
	now        func() time.Time
}

func defaultCLI() *cli {
	return &cli{
		loadConfig: config.Load,
		newApp: func(ctx context.Context, cfg config.Config) (*bootstrap.App, error) {
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Service: cfg.Metrics.ServiceName,
				Version: version,
			})
			return bootstrap.New(ctx, cfg, logger)
		},
		now: time.Now,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultCLI()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ballknowers",
		Short: "Fantasy basketball reports from NBA box scores and Sleeper",
		Long: `ballknowers scores every NBA player's box score for a date, ranks the top
performers, cross-references Sleeper's trending adds and reports on league drafts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newReportCmd(c),
		newBackfillCmd(c),
		newShowCmd(c),
		newDraftCmd(c),
		newMembersCmd(c),
		newMatchupsCmd(c),
	)
	return rootCmd
}

// run builds the app with cfg adjusted by tweak, runs fn and records the command outcome.
func (c *cli) run(cmd *cobra.Command, tweak func(*config.Config), fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg := c.loadConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := c.newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close(cmd.Name())

	logger := app.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	ctx = logging.WithLogger(ctx, logger.With(logging.FieldCommand, cmd.Name()))

	start := time.Now()
	err = fn(ctx, app)
	app.RecordRun(cmd.Name(), start, err)
	return err
}
