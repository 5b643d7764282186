// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport endpoint, started by main and stopped
// through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
