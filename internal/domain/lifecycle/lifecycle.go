// Package lifecycle holds shared values for starting and stopping long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
