//go:build !windows

package root

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"

	"github.com/aemsenhuber/follow/internal/tui/app"
)

// checkInteractive refuses to start unless both ends of the conversation are
// terminals. This runs before any alternate-screen state is entered.
func checkInteractive() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("standard input is not a terminal")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("standard output is not a terminal")
	}
	return nil
}

func launchTUI(opts app.Options) error {
	input, cleanup, err := openTUIInput()
	if err != nil {
		return fmt.Errorf("cannot initialize TUI input: %w", err)
	}
	defer cleanup()

	p := tea.NewProgram(app.NewModel(opts), tea.WithAltScreen(), tea.WithInput(input))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func openTUIInput() (*os.File, func(), error) {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		if err := ensureBlocking(f); err != nil {
			_ = f.Close()
			return nil, func() {}, fmt.Errorf("configure /dev/tty: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if err := ensureBlocking(os.Stdin); err != nil {
		return nil, func() {}, fmt.Errorf("stdin is not a usable TUI input: %w", err)
	}
	return os.Stdin, func() {}, nil
}

// ensureBlocking clears O_NONBLOCK; a nonblocking tty fd inherited from the
// parent breaks the input reader.
func ensureBlocking(f *os.File) error {
	return unix.SetNonblock(int(f.Fd()), false)
}
