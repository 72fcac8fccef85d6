package service

import (
	"errors"
	"fmt"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

// Sentinel errors returned by AuthorService. Callers check them with errors.Is.
var (
	// ErrAuthorNotFound indicates the REST upstream returned no author.
	// It matches domain.ErrNotFound.
	ErrAuthorNotFound = fmt.Errorf("author %w", domain.ErrNotFound)

	// ErrImageNotFound indicates the image service has no image for a GUID.
	// It matches domain.ErrNotFound.
	ErrImageNotFound = fmt.Errorf("image %w", domain.ErrNotFound)

	// ErrEnrichmentFailed indicates the author was fetched but the image
	// lookup failed, which fails the whole request.
	ErrEnrichmentFailed = errors.New("failed to fetch author image")
)

// AuthorServiceError wraps errors from the service with the failing operation.
type AuthorServiceError struct {
	// Operation is the operation that failed (e.g., "get_author", "save_image")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

// Error returns the underlying message unchanged so upstream messages can be
// surfaced verbatim.
func (e *AuthorServiceError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthorServiceError) Unwrap() error {
	return e.Err
}

// newAuthorServiceError wraps err unless it is nil or already a service sentinel.
func newAuthorServiceError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuthorNotFound) || errors.Is(err, ErrImageNotFound) {
		return err
	}
	return &AuthorServiceError{Operation: operation, Err: err}
}
