// Package autorapi is the client for the REST service that owns author data.
//
// Client is the generic capability {Get(path), Post(path, body)} over a fixed
// base URL; Authors layers the three author operations the gateway needs on top
// of it. Bodies are passed through as raw JSON: the gateway never interprets
// author fields beyond what internal/domain.Author exposes.
//
// Failures are reported as *domain.UpstreamError. Transport failures carry
// domain.ErrUpstreamUnavailable; non-2xx answers carry domain.ErrUpstreamRejected
// with the message "Request failed with status code N".
package autorapi
