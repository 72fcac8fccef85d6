// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the upstream clients and the HTTP layer.
var (
	// ErrUpstreamUnavailable is returned when a network or connection failure
	// prevents reaching the REST or gRPC upstream.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected is returned when an upstream answers with a non-2xx
	// status or an explicit service-level failure.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrNotFound is returned when the requested entity is genuinely absent.
	ErrNotFound = errors.New("not found")

	// ErrInputMissing is returned when a required request input, such as an
	// uploaded file, was not provided.
	ErrInputMissing = errors.New("input missing")
)

// Upstream names used in UpstreamError and metrics labels.
const (
	UpstreamAuthors = "authors"
	UpstreamImages  = "images"
)

// UpstreamError describes a failed call to one of the upstream services.
// Error returns the underlying message only, so it can be surfaced verbatim
// to HTTP callers.
type UpstreamError struct {
	Upstream   string // UpstreamAuthors or UpstreamImages
	Op         string // operation name, e.g. "get" or "SaveImage"
	StatusCode int    // HTTP status for REST rejections, zero otherwise
	Kind       error  // ErrUpstreamUnavailable or ErrUpstreamRejected
	Err        error
}

// NewUnavailableError wraps err as a transport failure.
func NewUnavailableError(upstream, op string, err error) *UpstreamError {
	return &UpstreamError{Upstream: upstream, Op: op, Kind: ErrUpstreamUnavailable, Err: err}
}

// NewRejectedError wraps err as an upstream rejection with an optional HTTP status.
func NewRejectedError(upstream, op string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Upstream:   upstream,
		Op:         op,
		StatusCode: statusCode,
		Kind:       ErrUpstreamRejected,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes both the taxonomy kind and the underlying cause to errors.Is.
func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// String returns a log-friendly description including upstream and operation.
func (e *UpstreamError) String() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Upstream, e.Op, e.StatusCode, e.Error())
	}
	return fmt.Sprintf("%s %s: %s", e.Upstream, e.Op, e.Error())
}

// IsUnavailable reports whether err is a transport failure to an upstream.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}
