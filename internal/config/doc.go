// Package config provides configuration loading, merging, and validation
// facilities for the suite process and the terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Anything still unset afterwards takes the package defaults. The single
// entry point is [GetStructuredConfig].
package config
