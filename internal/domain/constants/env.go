package constants

// Deployment environments named by env.env.
const (
	EnvLocal = "local"
)
