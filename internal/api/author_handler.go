package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ceron-eng/autores-gateway/internal/api/shared"
	"github.com/ceron-eng/autores-gateway/internal/domain"
	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
	"github.com/ceron-eng/autores-gateway/internal/redact"
	"github.com/ceron-eng/autores-gateway/internal/service"
)

// Upload form fields.
const (
	ImageFormField = "image"
	GUIDFormField  = "guid"
)

// UploadStager stages multipart uploads on behalf of the handler.
type UploadStager interface {
	AcceptUpload(r *http.Request, field string) (*domain.UploadedFile, error)
	Read(f *domain.UploadedFile) ([]byte, error)
	Remove(f *domain.UploadedFile) error
}

// AuthorHandler handles the /autores routes
type AuthorHandler struct {
	authorService service.AuthorService
	stager        UploadStager
	logger        *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(
	authorService service.AuthorService,
	stager UploadStager,
	logger *slog.Logger,
) *AuthorHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthorHandler")
	}

	return &AuthorHandler{
		authorService: authorService,
		stager:        stager,
		logger:        logger.With(slog.String("component", "author_handler")),
	}
}

// RegisterRoutes mounts the author routes on r. The standalone image route is
// only mounted when withRawImage is set.
func (h *AuthorHandler) RegisterRoutes(r chi.Router, withRawImage bool) {
	r.Route("/autores", func(r chi.Router) {
		r.Get("/", h.ListAuthors)
		r.Post("/", h.CreateAuthor)
		r.Post("/save-image", h.SaveImage)
		r.Get("/{id}", h.GetAuthor)
		if withRawImage {
			r.Get("/{guid}/imagen", h.GetImage)
		}
	})
}

// ListAuthors handles GET /autores requests.
// The upstream list is returned verbatim.
func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorService.ListAuthors(r.Context())
	if err != nil {
		h.respondTextError(w, r, err)
		return
	}

	shared.RespondWithRawJSON(w, r, http.StatusOK, authors)
}

// GetAuthor handles GET /autores/{id} requests.
// The author is returned with its image attached when one is stored.
func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	log.Debug("getting author", slog.String("author_id", id))

	author, err := h.authorService.GetAuthor(r.Context(), id)
	if err != nil {
		h.respondTextError(w, r, err)
		return
	}

	shared.RespondWithRawJSON(w, r, http.StatusOK, author)
}

// CreateAuthor handles POST /autores requests.
// The body is forwarded unchanged and the upstream's response is returned with 201.
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	body, err := shared.ReadBody(w, r, shared.MaxBodyBytes)
	if err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			shared.RespondWithTextErrorAndLog(w, r, http.StatusRequestEntityTooLarge, MsgRequestBodyTooLarge, err)
			return
		}
		shared.RespondWithTextErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	created, err := h.authorService.CreateAuthor(r.Context(), body)
	if err != nil {
		h.respondTextError(w, r, err)
		return
	}

	shared.RespondWithRawJSON(w, r, http.StatusCreated, created)
}

// SaveImage handles POST /autores/save-image requests.
// It expects a multipart form with an "image" file and an optional "guid" field.
func (h *AuthorHandler) SaveImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	file, err := h.stager.AcceptUpload(r, ImageFormField)
	if err != nil {
		h.respondStatusError(w, r, err)
		return
	}
	defer func() {
		if err := h.stager.Remove(file); err != nil {
			log.Warn("failed to remove staged upload",
				slog.String("error", redact.Error(err)))
		}
	}()

	image, err := h.stager.Read(file)
	if err != nil {
		h.respondStatusError(w, r, err)
		return
	}

	result, err := h.authorService.SaveImage(r.Context(), r.PostFormValue(GUIDFormField), file.OriginalName, image)
	if err != nil {
		h.respondStatusError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetImage handles GET /autores/{guid}/imagen requests.
// The stored image bytes are returned as they are.
func (h *AuthorHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	image, err := h.authorService.FetchRawImage(r.Context(), chi.URLParam(r, "guid"))
	if err != nil {
		h.respondStatusError(w, r, err)
		return
	}

	shared.RespondWithBytes(w, r, http.StatusOK, "application/octet-stream", image)
}

func (h *AuthorHandler) respondTextError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithTextErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
}

func (h *AuthorHandler) respondStatusError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithStatusErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
}
