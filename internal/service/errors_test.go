package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrAuthorNotFound", func(t *testing.T) {
		assert.Equal(t, "author not found", ErrAuthorNotFound.Error())
		assert.True(t, errors.Is(ErrAuthorNotFound, domain.ErrNotFound))
	})

	t.Run("ErrImageNotFound", func(t *testing.T) {
		assert.Equal(t, "image not found", ErrImageNotFound.Error())
		assert.True(t, errors.Is(ErrImageNotFound, domain.ErrNotFound))
	})

	t.Run("ErrEnrichmentFailed", func(t *testing.T) {
		assert.False(t, errors.Is(ErrEnrichmentFailed, domain.ErrNotFound))
	})
}

func TestAuthorServiceError(t *testing.T) {
	upstream := domain.NewUnavailableError(domain.UpstreamAuthors, "get", errors.New("connect ECONNREFUSED"))

	err := newAuthorServiceError("get_author", upstream)

	var svcErr *AuthorServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "get_author", svcErr.Operation)
	assert.Equal(t, "connect ECONNREFUSED", err.Error(), "message must be the upstream's")
	assert.True(t, errors.Is(err, domain.ErrUpstreamUnavailable))
}

func TestNewAuthorServiceErrorPassesSentinels(t *testing.T) {
	assert.Nil(t, newAuthorServiceError("op", nil))
	assert.Same(t, ErrAuthorNotFound, newAuthorServiceError("op", ErrAuthorNotFound))
	assert.Same(t, ErrImageNotFound, newAuthorServiceError("op", ErrImageNotFound))
}
