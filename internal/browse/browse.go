package browse

import (
	"context"
	"errors"

	"github.com/FranLegon/drive-transfer/internal/logger"
	"github.com/FranLegon/drive-transfer/internal/model"
	"github.com/FranLegon/drive-transfer/internal/rclone"
	"github.com/FranLegon/drive-transfer/internal/ui"
)

// ErrAborted is returned when the user declines to retry an empty folder
// listing. The shell maps it to a non-zero exit.
var ErrAborted = errors.New("folder selection aborted")

// Browser lets the user pick a top-level folder on a remote.
type Browser struct {
	rc rclone.Runner
	ui ui.Prompter
}

func NewBrowser(rc rclone.Runner, prompter ui.Prompter) *Browser {
	return &Browser{rc: rc, ui: prompter}
}

// ListFolders prints a numbered listing of the remote's top-level entries
// and returns them. An empty result may mean an empty remote or a failed
// call; rclone's output does not distinguish the two here.
func (b *Browser) ListFolders(ctx context.Context, remote model.Remote) []string {
	logger.Info("\nListing folders in %s:", remote)

	folders := b.rc.Lsf(ctx, remote)
	if len(folders) == 0 {
		logger.Warning("No folders found or an error occurred. Check your authentication.")
		return nil
	}

	for i, folder := range folders {
		logger.Info("%d. %s", i+1, folder)
	}
	return folders
}

// SelectFolder loops until the user picks a folder. An empty listing offers
// a retry; declining it returns ErrAborted.
func (b *Browser) SelectFolder(ctx context.Context, remote model.Remote) (string, error) {
	for {
		folders := b.ListFolders(ctx, remote)
		if len(folders) == 0 {
			if !b.ui.Confirm("Would you like to try again?") {
				return "", ErrAborted
			}
			continue
		}

		choice, err := b.ui.Select("Enter the number of the folder you want to select", len(folders))
		if err != nil {
			return "", err
		}
		return folders[choice-1], nil
	}
}
