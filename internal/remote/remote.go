package remote

import (
	"context"
	"fmt"

	"github.com/FranLegon/drive-transfer/internal/logger"
	"github.com/FranLegon/drive-transfer/internal/model"
	"github.com/FranLegon/drive-transfer/internal/rclone"
	"github.com/FranLegon/drive-transfer/internal/ui"
)

// Manager resolves the source and destination remotes for a session, either
// by reusing remotes already present in rclone's configuration or by driving
// rclone's interactive creation flow.
type Manager struct {
	rc       rclone.Runner
	ui       ui.Prompter
	provider string
}

func NewManager(rc rclone.Runner, prompter ui.Prompter, provider string) *Manager {
	return &Manager{rc: rc, ui: prompter, provider: provider}
}

// SelectOrCreatePair returns the source and destination remote names, in
// that order. With no configured remotes it goes straight to creation.
func (m *Manager) SelectOrCreatePair(ctx context.Context) (model.Remote, model.Remote, error) {
	existing := m.rc.ListRemotes(ctx)
	if len(existing) > 0 {
		logger.Info("Found existing rclone remotes:")
		printNumbered(existing)
		if m.ui.Confirm("Use existing remotes?") {
			return m.selectPair(existing)
		}
	}

	src, err := m.createRemote(ctx, "Source")
	if err != nil {
		return "", "", err
	}
	dst, err := m.createRemote(ctx, "Destination")
	if err != nil {
		return "", "", err
	}
	// Freshly created remotes are not checked against each other; only the
	// reuse path below rejects picking the same entry twice.
	return src, dst, nil
}

// selectPair picks two distinct entries from the configured remotes. The
// destination prompt loops until it differs from the source selection.
func (m *Manager) selectPair(existing []string) (model.Remote, model.Remote, error) {
	printNumbered(existing)
	srcIdx, err := m.ui.Select("Enter the number of the source remote", len(existing))
	if err != nil {
		return "", "", err
	}

	for {
		printNumbered(existing)
		dstIdx, err := m.ui.Select("Enter the number of the destination remote", len(existing))
		if err != nil {
			return "", "", err
		}
		if dstIdx == srcIdx {
			logger.Warning("The destination must be a different remote than the source.")
			continue
		}
		return model.Remote(existing[srcIdx-1]), model.Remote(existing[dstIdx-1]), nil
	}
}

// createRemote prompts for a name and hands off to rclone's config flow,
// which opens a browser for the provider's login.
func (m *Manager) createRemote(ctx context.Context, role string) (model.Remote, error) {
	logger.Info("\n=== Configuring %s Account ===", role)
	name, err := m.ui.Input(fmt.Sprintf("Enter a name for your %s remote", role))
	if err != nil {
		return "", err
	}

	logger.Info("\nA browser window will open. Please follow these steps:")
	logger.Info("1. Log in to your account")
	logger.Info("2. Grant the requested permissions")
	logger.Info("3. Return to this window once the flow completes")

	// A failed creation is not fatal here: the folder-listing step will
	// come back empty for a broken remote and offer its own retry.
	if err := m.rc.ConfigCreate(ctx, name, m.provider); err != nil {
		logger.Warning("remote configuration reported an error: %v", err)
	}
	return model.Remote(name), nil
}

func printNumbered(items []string) {
	for i, item := range items {
		logger.Info("%d. %s", i+1, item)
	}
}
