package bootstrap

import (
	"log/slog"

	"github.com/ajuarez99/ballknowers/internal/config"
	"github.com/ajuarez99/ballknowers/internal/snapshots"
)

type snapshotComponents struct {
	store  *snapshots.FSStore
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Report.Dir
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Report.RetentionDays).WithLogger(logger),
	}
}
