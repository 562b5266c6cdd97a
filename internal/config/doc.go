// Package config provides configuration loading, merging, and validation
// facilities for the sync relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field keeps the first non-zero value it receives, so earlier
// sources win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server runtime
// and [GetClientConfig] for the client daemon.
package config
