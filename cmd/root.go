package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FranLegon/drive-transfer/internal/config"
	"github.com/FranLegon/drive-transfer/internal/rclone"
	"github.com/FranLegon/drive-transfer/internal/task"
	"github.com/FranLegon/drive-transfer/internal/ui"
)

var (
	safeRun bool
)

// rootCmd represents the base command. The tool is a single interactive
// session, so there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "drive-transfer",
	Short: "An interactive rclone front-end for moving folders between cloud drives.",
	Long: `drive-transfer walks you through authenticating two cloud-storage remotes,
picking a source and a destination folder, and running a copy, sync, or
migrate through a local rclone binary.

rclone owns all credentials, checksumming, and data movement; this tool only
builds and dispatches the commands. Settings such as the rclone path can be
overridden via environment variables or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the root command. This is the main entry point for the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&safeRun, "safe", "s", false, "Print the transfer command instead of executing it (--safe)")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rc := rclone.NewClient(cfg.RclonePath)
	runner := task.NewRunner(cfg, rc, ui.Console{}, safeRun)
	return runner.Session(cmd.Context())
}
