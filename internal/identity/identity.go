package identity

const (
	// AppSlug is the canonical identifier for user-facing and on-disk state.
	// It intentionally matches the only supported CLI binary name.
	AppSlug = "follow"
	CLIName = "follow"

	GlobalConfigFile = "config.yml"
	LogFile          = "follow.log"
)
