package rclone

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/FranLegon/drive-transfer/internal/logger"
	"github.com/FranLegon/drive-transfer/internal/model"
)

// CommandError reports a failed rclone invocation along with whatever the
// child process wrote to stderr, when it was captured.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("rclone %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner is the subset of rclone subcommands the tool drives. Flows accept
// this interface so tests can substitute a scripted fake.
type Runner interface {
	// Version probes the rclone binary; an error means it is missing or
	// not executable.
	Version(ctx context.Context) error
	// ListRemotes returns the names of configured remotes, empty on failure.
	ListRemotes(ctx context.Context) []string
	// ConfigCreate starts rclone's interactive remote-creation flow, which
	// may open a browser for authentication. Blocks until it completes.
	ConfigCreate(ctx context.Context, name, provider string) error
	// Lsf returns the top-level entries of a remote, empty on failure.
	Lsf(ctx context.Context, remote model.Remote) []string
	// Mkdir creates a folder on a remote; already-existing folders are not
	// an error per rclone's documented behavior.
	Mkdir(ctx context.Context, remote model.Remote, folder string) error
	// Transfer runs the copy or sync with output streamed to the terminal.
	Transfer(ctx context.Context, req model.TransferRequest) error
}

// Client invokes a local rclone binary. Every call spawns one child process
// and blocks until it exits.
type Client struct {
	bin string
}

func NewClient(bin string) *Client {
	return &Client{bin: bin}
}

// run executes rclone capturing its output. On a non-zero exit the captured
// stderr is folded into the returned CommandError.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}

// runStreaming executes rclone with its output connected straight to the
// terminal, so the user sees progress live. Stdin is attached too because
// some subcommands (config create) are interactive.
func (c *Client) runStreaming(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Args: args, Err: err}
	}
	return nil
}

func (c *Client) Version(ctx context.Context) error {
	_, err := c.run(ctx, "version")
	return err
}

func (c *Client) ListRemotes(ctx context.Context) []string {
	out, err := c.run(ctx, "listremotes")
	if err != nil {
		logger.Warning("could not list remotes: %v", err)
		return nil
	}
	return splitRemotes(out)
}

func (c *Client) ConfigCreate(ctx context.Context, name, provider string) error {
	return c.runStreaming(ctx, "config", "create", name, provider)
}

func (c *Client) Lsf(ctx context.Context, remote model.Remote) []string {
	out, err := c.run(ctx, "lsf", remote.Spec(""))
	if err != nil {
		logger.Warning("could not list %s: %v", remote, err)
		return nil
	}
	return splitLines(out)
}

func (c *Client) Mkdir(ctx context.Context, remote model.Remote, folder string) error {
	_, err := c.run(ctx, "mkdir", remote.Spec(folder))
	return err
}

func (c *Client) Transfer(ctx context.Context, req model.TransferRequest) error {
	return c.runStreaming(ctx, req.Args()...)
}

// splitRemotes parses `rclone listremotes` output: one name per line, each
// suffixed with a single colon.
func splitRemotes(out string) []string {
	var remotes []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSuffix(strings.TrimSpace(line), ":")
		if name != "" {
			remotes = append(remotes, name)
		}
	}
	return remotes
}

// splitLines returns the trimmed non-empty lines of a listing in order.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
