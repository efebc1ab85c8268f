// Package lifecycle holds timeouts shared by components with start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
