// Package delivery contains the inbound adapters of the application.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
