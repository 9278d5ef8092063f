package runenv

import (
	"os"
	"strconv"
	"strings"
)

const (
	ConfigDirEnv       = "FOLLOW_CONFIG_DIR"
	StateDirEnv        = "FOLLOW_STATE_DIR"
	CaptureMaxBytesEnv = "FOLLOW_CAPTURE_MAX_BYTES"
)

func ConfigDir() string {
	return strings.TrimSpace(os.Getenv(ConfigDirEnv))
}

func StateDir() string {
	return strings.TrimSpace(os.Getenv(StateDirEnv))
}

// CaptureMaxBytes returns the capture budget override, or 0 when unset or
// unusable. Values are bytes; non-positive overrides are ignored.
func CaptureMaxBytes() int64 {
	raw := strings.TrimSpace(os.Getenv(CaptureMaxBytesEnv))
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
