package appdirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aemsenhuber/follow/internal/runenv"
)

func TestConfigDirPathOverrideDoesNotCreate(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "config")
	t.Setenv(runenv.ConfigDirEnv, dir)

	got, err := ConfigDirPath()
	if err != nil {
		t.Fatalf("ConfigDirPath() error: %v", err)
	}
	if got != dir {
		t.Fatalf("ConfigDirPath() = %q, want %q", got, dir)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected config dir to not exist, err=%v", err)
	}
}

func TestConfigFilePathUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(runenv.ConfigDirEnv, dir)

	got, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath() error: %v", err)
	}
	if want := filepath.Join(dir, "config.yml"); got != want {
		t.Fatalf("ConfigFilePath() = %q, want %q", got, want)
	}
}

func TestStateDirOverrideCreates(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "state")
	t.Setenv(runenv.StateDirEnv, dir)

	got, err := StateDir()
	if err != nil {
		t.Fatalf("StateDir() error: %v", err)
	}
	if got != dir {
		t.Fatalf("StateDir() = %q, want %q", got, dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("state dir is not a directory")
	}
}

func TestStateDirRejectsFile(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "state")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv(runenv.StateDirEnv, file)

	if _, err := StateDir(); err == nil {
		t.Fatalf("expected error for file in place of state dir")
	}
}
