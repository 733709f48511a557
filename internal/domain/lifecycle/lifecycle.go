// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as HTTP drain and DB close.
const DefaultTimeout = 10 * time.Second
