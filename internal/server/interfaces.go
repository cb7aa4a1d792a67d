package server

import "context"

// Server is the lifecycle contract of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a transport fails,
	// then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	// serve blocks until the transport stops. A graceful stop returns nil.
	serve() error
	shutdown()
	name() string
}
