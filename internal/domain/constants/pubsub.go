// Package constants holds identifiers shared across layers.
package constants

// Supported event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
