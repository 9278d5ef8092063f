package runner

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command describes what to execute on each refresh.
type Command struct {
	// Argv is the command and its arguments, as given after "--".
	Argv []string
	// Shell joins Argv with single spaces and hands the result to /bin/sh.
	// No quoting is applied: metacharacters behave exactly as if the command
	// had been typed into a shell.
	Shell bool
}

// execArgv returns the argv actually passed to the executor.
func (c Command) execArgv() []string {
	if c.Shell {
		return []string{"/bin/sh", "-c", strings.Join(c.Argv, " ")}
	}
	return c.Argv
}

// Display renders the command for the header line. Shell mode shows the
// script as typed; direct mode quotes arguments shell-faithfully.
func (c Command) Display() string {
	if c.Shell {
		return strings.Join(c.Argv, " ")
	}
	return shellquote.Join(c.Argv...)
}
