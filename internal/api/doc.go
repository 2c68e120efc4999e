// Package api implements the gateway HTTP protocol: request
// construction for the lookup, send and blob endpoints, and the exact
// mapping of response status codes onto the typed error taxonomy.
//
// The package performs no retries and imposes no timeouts of its own;
// deadline and transport policy belong to the injected http.Client and
// the caller's context.
package api
