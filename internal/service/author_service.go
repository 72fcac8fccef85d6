package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ceron-eng/autores-gateway/internal/domain"
	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
	"github.com/ceron-eng/autores-gateway/internal/redact"
)

// AuthorRepository is the REST upstream that owns author data.
type AuthorRepository interface {
	// List returns the author collection as the upstream sent it
	List(ctx context.Context) (json.RawMessage, error)

	// Get returns the author document for id; an absent author is not an error
	Get(ctx context.Context, id string) (domain.Author, error)

	// Create forwards body and returns the created resource
	Create(ctx context.Context, body []byte) (json.RawMessage, error)
}

// ImageStore is the gRPC image service.
type ImageStore interface {
	FetchImageByGUID(ctx context.Context, guid string) (domain.ImageLookupResult, error)
	SaveImage(ctx context.Context, req domain.ImageSaveRequest) (domain.ImageSaveResult, error)
}

// AuthorService composes author and image data.
type AuthorService interface {
	// ListAuthors returns the upstream author list verbatim, without images
	ListAuthors(ctx context.Context) (json.RawMessage, error)

	// GetAuthor fetches one author and, when enrichment is enabled, attaches
	// its image. A missing image is not an error; a failed lookup is.
	GetAuthor(ctx context.Context, id string) (domain.Author, error)

	// CreateAuthor forwards body to the upstream and returns the created author
	CreateAuthor(ctx context.Context, body []byte) (json.RawMessage, error)

	// EnrichAuthor attaches the image stored under the author's autorLibroId
	EnrichAuthor(ctx context.Context, author domain.Author) (domain.Author, error)

	// FetchRawImage returns the bytes of the image stored under guid
	FetchRawImage(ctx context.Context, guid string) ([]byte, error)

	// SaveImage stores image under guid, or under the default GUID when guid is empty
	SaveImage(ctx context.Context, guid, name string, image []byte) (domain.ImageSaveResult, error)
}

// Options configures the optional behaviors of the service.
type Options struct {
	// EnrichAuthorImage makes GetAuthor attach the author's image.
	EnrichAuthorImage bool
	// DefaultImageGUID is used by SaveImage when no GUID was provided.
	DefaultImageGUID string
}

// authorServiceImpl implements the AuthorService interface
type authorServiceImpl struct {
	authors AuthorRepository
	images  ImageStore
	opts    Options
	logger  *slog.Logger
}

// NewAuthorService creates a new AuthorService.
// It returns an error if any of the required dependencies are nil.
func NewAuthorService(
	authors AuthorRepository,
	images ImageStore,
	opts Options,
	log *slog.Logger,
) (AuthorService, error) {
	if authors == nil {
		return nil, fmt.Errorf("author repository cannot be nil")
	}
	if images == nil {
		return nil, fmt.Errorf("image store cannot be nil")
	}
	if opts.DefaultImageGUID == "" {
		opts.DefaultImageGUID = domain.DefaultImageGUID
	}
	if log == nil {
		log = slog.Default()
	}

	return &authorServiceImpl{
		authors: authors,
		images:  images,
		opts:    opts,
		logger:  log.With("component", "author_service"),
	}, nil
}

func (s *authorServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListAuthors implements AuthorService.
func (s *authorServiceImpl) ListAuthors(ctx context.Context) (json.RawMessage, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		return nil, newAuthorServiceError("list_authors", err)
	}
	return authors, nil
}

// GetAuthor implements AuthorService.
func (s *authorServiceImpl) GetAuthor(ctx context.Context, id string) (domain.Author, error) {
	author, err := s.authors.Get(ctx, id)
	if err != nil {
		return nil, newAuthorServiceError("get_author", err)
	}
	if author.IsAbsent() {
		s.log(ctx).Debug("author not found", "author_id", id)
		return nil, ErrAuthorNotFound
	}

	if !s.opts.EnrichAuthorImage {
		return author, nil
	}
	return s.EnrichAuthor(ctx, author)
}

// EnrichAuthor implements AuthorService.
func (s *authorServiceImpl) EnrichAuthor(ctx context.Context, author domain.Author) (domain.Author, error) {
	guid := author.ImageGUID()

	result, err := s.images.FetchImageByGUID(ctx, guid)
	if err != nil {
		s.log(ctx).Error("failed to fetch author image",
			"guid", guid,
			"error", redact.Error(err))
		return nil, newAuthorServiceError("enrich_author", fmt.Errorf("%w: %w", ErrEnrichmentFailed, err))
	}

	if !result.Success {
		s.log(ctx).Warn("author image not found", "guid", guid)
		return author, nil
	}

	enriched, err := author.WithImage(result.Image)
	if err != nil {
		return nil, newAuthorServiceError("enrich_author", err)
	}
	return enriched, nil
}

// CreateAuthor implements AuthorService.
func (s *authorServiceImpl) CreateAuthor(ctx context.Context, body []byte) (json.RawMessage, error) {
	created, err := s.authors.Create(ctx, body)
	if err != nil {
		return nil, newAuthorServiceError("create_author", err)
	}
	s.log(ctx).Info("author created")
	return created, nil
}

// FetchRawImage implements AuthorService.
func (s *authorServiceImpl) FetchRawImage(ctx context.Context, guid string) ([]byte, error) {
	result, err := s.images.FetchImageByGUID(ctx, guid)
	if err != nil {
		return nil, newAuthorServiceError("fetch_image", err)
	}
	if !result.Success {
		return nil, ErrImageNotFound
	}
	return result.Image, nil
}

// SaveImage implements AuthorService.
func (s *authorServiceImpl) SaveImage(
	ctx context.Context,
	guid, name string,
	image []byte,
) (domain.ImageSaveResult, error) {
	req := domain.NewImageSaveRequest(guid, s.opts.DefaultImageGUID, name, image)

	result, err := s.images.SaveImage(ctx, req)
	if err != nil {
		return domain.ImageSaveResult{}, newAuthorServiceError("save_image", err)
	}

	s.log(ctx).Info("image saved",
		"guid", req.GUID,
		"name", req.Name,
		"size", len(req.Image),
		"success", result.Success)
	return result, nil
}
