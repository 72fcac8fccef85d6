package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
	"github.com/ceron-eng/autores-gateway/internal/redact"
)

// StatusResponse is the structured {success, message} body used by the image routes.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithRawJSON writes an already encoded JSON document unchanged.
func RespondWithRawJSON(w http.ResponseWriter, r *http.Request, status int, data []byte) {
	RespondWithBytes(w, r, status, "application/json", data)
}

// RespondWithText writes a plain-text body.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithBytes(w, r, status, "text/plain; charset=utf-8", []byte(message))
}

// RespondWithBytes writes data with the given content type.
func RespondWithBytes(w http.ResponseWriter, r *http.Request, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to write response", "error", err)
	}
}

// RespondWithTextErrorAndLog writes message as a plain-text error body and logs err.
func RespondWithTextErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logError(r, status, message, err)
	RespondWithText(w, r, status, message)
}

// RespondWithStatusErrorAndLog writes {success:false, message} and logs err.
func RespondWithStatusErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logError(r, status, message, err)
	RespondWithJSON(w, r, status, StatusResponse{Success: false, Message: message})
}

// logError records an error response.
//
// Log level strategy:
// - 5xx errors: ERROR
// - everything else: DEBUG
//
// The logged error is redacted; the response body is whatever the handler chose.
func logError(r *http.Request, status int, message string, err error) {
	attrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", redact.String(message)),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), level, "API error response", attrs...)
}
