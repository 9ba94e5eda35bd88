package task

import (
	"context"
	"errors"

	"github.com/FranLegon/drive-transfer/internal/browse"
	"github.com/FranLegon/drive-transfer/internal/logger"
	"github.com/FranLegon/drive-transfer/internal/model"
)

// ErrPrerequisite means the rclone binary could not be invoked. The program
// exits non-zero immediately; nothing can proceed without it.
var ErrPrerequisite = errors.New("rclone binary not available")

// Session drives one interactive transfer from the prerequisite check
// through completion or cancellation. A nil return covers both a finished
// transfer and a deliberate cancel.
func (r *Runner) Session(ctx context.Context) error {
	logger.Info("Welcome to the Drive Transfer Tool!")

	if err := r.rc.Version(ctx); err != nil {
		logger.Error("rclone was not found or could not be run.")
		logger.Error("Make sure the rclone executable sits next to this program, or set RCLONE_PATH.")
		return ErrPrerequisite
	}

	src, dst, err := r.remotes.SelectOrCreatePair(ctx)
	if err != nil {
		return cancelled(err)
	}

	logger.Info("\nSelect source folder:")
	srcFolder, err := r.browser.SelectFolder(ctx, src)
	if err != nil {
		return cancelled(err)
	}

	logger.Info("\nSelect destination folder:")
	dstFolder, err := r.browser.SelectFolder(ctx, dst)
	if err != nil {
		return cancelled(err)
	}

	op, err := r.selectOperation()
	if err != nil {
		return cancelled(err)
	}

	req := model.TransferRequest{
		Source:       src,
		SourceFolder: srcFolder,
		Dest:         dst,
		DestFolder:   dstFolder,
		Op:           op,
	}

	if !r.confirm(req) {
		logger.Info("Operation cancelled.")
		return nil
	}

	if err := r.Transfer(ctx, req); err != nil {
		logger.Error("Transfer failed: %v", err)
		return err
	}
	return nil
}

func (r *Runner) selectOperation() (model.Operation, error) {
	logger.Info("\nSelect operation type:")
	logger.Info("1. Copy (add all files to destination)")
	logger.Info("2. Sync (make destination match source exactly)")
	logger.Info("3. Migrate (only copy files that don't exist in destination)")

	choice, err := r.ui.Select("Enter your choice", 3)
	if err != nil {
		return 0, err
	}
	return model.Operation(choice), nil
}

// confirm echoes the resolved plan and requires a literal "yes" to proceed.
func (r *Runner) confirm(req model.TransferRequest) bool {
	logger.Info("\nYou are about to %s files from:", req.Op)
	logger.Info("Source: %s", req.Source.Spec(req.SourceFolder))
	logger.Info("Destination: %s", req.Dest.Spec(req.DestFolder))

	switch req.Op {
	case model.OpSync:
		logger.Warning("Sync will delete files in the destination that don't exist in the source!")
	case model.OpMigrate:
		logger.Info("\nMigration will only copy files that don't exist in the destination.")
		logger.Info("Existing files will be skipped.")
	}

	return r.ui.Confirm("Do you want to proceed?")
}

// cancelled folds prompt interrupts (Ctrl-C, EOF) into a clean cancel.
// A declined listing retry keeps its error so the shell can exit non-zero.
func cancelled(err error) error {
	if errors.Is(err, browse.ErrAborted) {
		return err
	}
	logger.Info("Operation cancelled.")
	return nil
}
