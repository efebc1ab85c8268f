// Package delivery holds the inbound adapters of the storefront: the public API and the order worker.
package delivery

import "context"

// Delivery is a server started by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
