// Package lifecycle holds shared start/stop settings for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as pinging the database or
// draining the HTTP server.
const DefaultTimeout = 10 * time.Second
