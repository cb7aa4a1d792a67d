// Package server runs the transport servers of the suite.
//
// It opens the HTTP and gRPC listeners, serves until the caller's context
// is cancelled or a transport fails, and then shuts every transport down
// gracefully.
package server
