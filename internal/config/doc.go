// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the listening port, upstream addresses, upload staging and the
// optional composition behaviors of the gateway.
package config
