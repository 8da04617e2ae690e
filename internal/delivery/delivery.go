// Package delivery defines the contract every transport front-end fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
