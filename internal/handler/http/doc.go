// Package http implements the loopback HTTP API of the suite.
//
// It exposes route wiring, request handlers, and middleware used by the view
// layers (browser and terminal client). Session lookup, request tracing,
// access logging, response compression and CORS are handled in this package
// before requests are delegated to the service layer, which re-checks
// authorization on every call.
package http
