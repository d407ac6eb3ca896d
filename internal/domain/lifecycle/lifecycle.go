// Package lifecycle holds shared lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations.
const DefaultTimeout = 10 * time.Second
