package task

import (
	"context"
	"strings"

	"github.com/FranLegon/drive-transfer/internal/browse"
	"github.com/FranLegon/drive-transfer/internal/config"
	"github.com/FranLegon/drive-transfer/internal/logger"
	"github.com/FranLegon/drive-transfer/internal/model"
	"github.com/FranLegon/drive-transfer/internal/rclone"
	"github.com/FranLegon/drive-transfer/internal/remote"
	"github.com/FranLegon/drive-transfer/internal/ui"
)

// Runner wires the rclone client and the prompt layer into the interactive
// transfer flow.
type Runner struct {
	rc       rclone.Runner
	ui       ui.Prompter
	remotes  *remote.Manager
	browser  *browse.Browser
	safeMode bool
}

// NewRunner creates a runner for one session.
func NewRunner(cfg *config.Config, rc rclone.Runner, prompter ui.Prompter, safeMode bool) *Runner {
	return &Runner{
		rc:       rc,
		ui:       prompter,
		remotes:  remote.NewManager(rc, prompter, cfg.ProviderType),
		browser:  browse.NewBrowser(rc, prompter),
		safeMode: safeMode,
	}
}

// Transfer ensures the destination folder exists, then hands the transfer to
// rclone with live output so the user can watch progress. There is no retry:
// a failed transfer surfaces rclone's error and ends the flow.
func (r *Runner) Transfer(ctx context.Context, req model.TransferRequest) error {
	logger.Info("\nStarting %s from %s to %s",
		req.Op, req.Source.Spec(req.SourceFolder), req.Dest.Spec(req.DestFolder))

	if r.safeMode {
		logger.DryRun("rclone mkdir %s", req.Dest.Spec(req.DestFolder))
		logger.DryRun("rclone %s", strings.Join(req.Args(), " "))
		return nil
	}

	// mkdir is idempotent on rclone's side; a failure here still lets the
	// transfer itself produce the authoritative error.
	if err := r.rc.Mkdir(ctx, req.Dest, req.DestFolder); err != nil {
		logger.Warning("could not create destination folder: %v", err)
	}

	if err := r.rc.Transfer(ctx, req); err != nil {
		return err
	}

	logger.Info("\n%s completed!", req.Op.Title())
	return nil
}
