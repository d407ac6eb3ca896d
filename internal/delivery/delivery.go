// Package delivery defines the transport-facing contract shared by all
// server frontends.
package delivery

import "context"

// Delivery is a long-running transport server. Implementations block in
// Serve until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
