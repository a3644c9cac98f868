// Package delivery defines the contract every transport implementation
// (HTTP today) fulfils so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a server that can be started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
