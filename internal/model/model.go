package model

// Remote is a named reference to a cloud storage account configured in
// rclone's own store. Remotes are created and persisted by rclone; this
// process only refers to them by name.
type Remote string

// Spec renders the rclone path spec for a folder on this remote.
func (r Remote) Spec(folder string) string {
	return string(r) + ":" + folder
}

// Operation selects the transfer semantics.
type Operation int

const (
	// OpCopy adds all source files to the destination.
	OpCopy Operation = iota + 1
	// OpSync makes the destination match the source exactly, deleting
	// destination entries that are absent from the source.
	OpSync
	// OpMigrate copies only files missing from the destination, comparing
	// by checksum; existing files are skipped.
	OpMigrate
)

func (o Operation) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpSync:
		return "sync"
	case OpMigrate:
		return "migrate"
	}
	return "unknown"
}

// Title returns the capitalized operation name used in completion messages.
func (o Operation) Title() string {
	switch o {
	case OpCopy:
		return "Copy"
	case OpSync:
		return "Sync"
	case OpMigrate:
		return "Migrate"
	}
	return "Unknown"
}

// TransferRequest describes one fully-resolved transfer. It is built once
// from the interactive session and consumed once.
type TransferRequest struct {
	Source       Remote
	SourceFolder string
	Dest         Remote
	DestFolder   string
	Op           Operation
}

// Args builds the rclone argv for this transfer. Copy and migrate run the
// "copy" subcommand; sync runs "sync" with its delete flags.
func (r TransferRequest) Args() []string {
	args := []string{
		"copy",
		r.Source.Spec(r.SourceFolder),
		r.Dest.Spec(r.DestFolder),
		"--progress",
		"-v",
	}

	switch r.Op {
	case OpSync:
		args[0] = "sync"
		args = append(args, "--delete-after", "--delete-excluded")
	case OpMigrate:
		args = append(args, "--ignore-existing", "--checksum")
	}

	return args
}
