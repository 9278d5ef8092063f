package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aemsenhuber/follow/internal/identity"
	"github.com/aemsenhuber/follow/internal/runenv"
)

// ConfigDirPath returns the directory holding the user config file. Override
// paths are returned as-is and never created.
func ConfigDirPath() (string, error) {
	if override := runenv.ConfigDir(); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// ConfigFilePath returns the path of the user config file, which may not exist.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalConfigFile), nil
}

// StateDir returns the directory used for on-disk state (logs), creating it
// when it does not exist yet.
func StateDir() (string, error) {
	if override := runenv.StateDir(); override != "" {
		return ensureDir(override)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return ensureDir(filepath.Join(dir, identity.AppSlug))
}

func ensureDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("state dir is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat state dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create state dir: %w", err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("state dir %q is not a directory", dir)
	}
	return dir, nil
}
