// Package delivery defines the contract every transport entrypoint
// (HTTP server, workers) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until the
// context is cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
