package autorapi

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

// Operation names reported in errors, logs and metrics.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
)

// Requester is the generic REST capability Authors is built on.
type Requester interface {
	Get(ctx context.Context, op, path string) ([]byte, error)
	Post(ctx context.Context, op, path string, body []byte) ([]byte, error)
}

// Authors exposes the author operations of the REST service.
type Authors struct {
	rest Requester
}

// NewAuthors wraps a Requester rooted at the service's /Autor base path.
func NewAuthors(rest Requester) *Authors {
	return &Authors{rest: rest}
}

// List returns the author collection verbatim.
func (a *Authors) List(ctx context.Context) (json.RawMessage, error) {
	return a.rest.Get(ctx, OpList, "/")
}

// Get returns the author with the given id. An absent author is reported by
// the returned document's IsAbsent, not as an error.
func (a *Authors) Get(ctx context.Context, id string) (domain.Author, error) {
	data, err := a.rest.Get(ctx, OpGet, "/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return domain.Author(data), nil
}

// Create forwards body to the service and returns the created resource.
func (a *Authors) Create(ctx context.Context, body []byte) (json.RawMessage, error) {
	return a.rest.Post(ctx, OpCreate, "/", body)
}
