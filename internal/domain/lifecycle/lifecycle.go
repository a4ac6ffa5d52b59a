// Package lifecycle holds process-wide lifecycle constants shared by the
// delivery and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
