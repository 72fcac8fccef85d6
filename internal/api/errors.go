package api

import (
	"errors"
	"net/http"

	"github.com/ceron-eng/autores-gateway/internal/domain"
	"github.com/ceron-eng/autores-gateway/internal/service"
)

// Fixed client-facing messages.
const (
	MsgAuthorNotFound      = "Autor no encontrado"
	MsgAuthorImageFailed   = "Error al obtener la imagen del autor"
	MsgNoFileUploaded      = "No file uploaded"
	MsgImageNotFound       = "Image not found"
	MsgRequestBodyTooLarge = "Request body too large"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on the
// error type. Upstream failures of either kind surface as 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Bad request errors
	case errors.Is(err, domain.ErrInputMissing):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the body text for err. Fixed messages replace the
// sentinels; everything else, upstream failures included, is passed through.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrAuthorNotFound):
		return MsgAuthorNotFound
	case errors.Is(err, service.ErrImageNotFound):
		return MsgImageNotFound
	case errors.Is(err, service.ErrEnrichmentFailed):
		return MsgAuthorImageFailed
	case errors.Is(err, domain.ErrInputMissing):
		return MsgNoFileUploaded
	default:
		return err.Error()
	}
}
