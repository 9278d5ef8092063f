//go:build windows

package root

import (
	"errors"

	"github.com/aemsenhuber/follow/internal/tui/app"
)

func checkInteractive() error {
	return errors.New("follow requires a Unix-like terminal")
}

func launchTUI(app.Options) error {
	return errors.New("follow requires a Unix-like terminal")
}
