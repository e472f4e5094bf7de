// Package delivery defines the contract shared by every transport entrypoint.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by the
// application once dependency injection has completed.
type Delivery interface {
	Serve(ctx context.Context) error
}
