package types

// ActionKind discriminates the variants of Action.
type ActionKind string

const (
	// ActionWriteFile replaces the full content of a config file,
	// snapshotting the previous content first.
	ActionWriteFile ActionKind = "write_file"

	// ActionAppendLine appends a single line to a file unless that
	// exact line is already present.
	ActionAppendLine ActionKind = "append_line"

	// ActionRunCommand invokes an external collaborator (package
	// manager, service manager, udev). Fire-and-forget: not retried
	// and not covered by rollback.
	ActionRunCommand ActionKind = "run_command"
)

// CommandDesc describes one external command invocation.
type CommandDesc struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args,omitempty"`
}

// Action is one configuration mutation or external command within a
// profile. Exactly the fields for its Kind are populated.
type Action struct {
	// ID is a stable identifier used in reports and logs.
	ID string

	// Summary is a short human-readable description.
	Summary string

	Kind ActionKind

	// Path and Content for ActionWriteFile; Path and Line for
	// ActionAppendLine. Paths must be absolute.
	Path    string
	Content string
	Line    string

	// Command for ActionRunCommand.
	Command CommandDesc
}

// WriteFile builds a full-content file write action.
func WriteFile(id, summary, path, content string) Action {
	return Action{ID: id, Summary: summary, Kind: ActionWriteFile, Path: path, Content: content}
}

// AppendLine builds an idempotent line-append action.
func AppendLine(id, summary, path, line string) Action {
	return Action{ID: id, Summary: summary, Kind: ActionAppendLine, Path: path, Line: line}
}

// RunCommand builds an external command action.
func RunCommand(id, summary string, program string, args ...string) Action {
	return Action{ID: id, Summary: summary, Kind: ActionRunCommand, Command: CommandDesc{Program: program, Args: args}}
}
