package mocks

import (
	"context"
	"sync/atomic"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

// MockImageStore implements service.ImageStore for testing
type MockImageStore struct {
	FetchImageByGUIDFn func(ctx context.Context, guid string) (domain.ImageLookupResult, error)
	SaveImageFn        func(ctx context.Context, req domain.ImageSaveRequest) (domain.ImageSaveResult, error)

	// Default return values
	Lookup       domain.ImageLookupResult
	SaveResult   domain.ImageSaveResult
	DefaultError error

	FetchCalls atomic.Int32
	SaveCalls  atomic.Int32
}

// FetchImageByGUID implements the ImageStore.FetchImageByGUID method
func (m *MockImageStore) FetchImageByGUID(ctx context.Context, guid string) (domain.ImageLookupResult, error) {
	m.FetchCalls.Add(1)
	if m.FetchImageByGUIDFn != nil {
		return m.FetchImageByGUIDFn(ctx, guid)
	}
	return m.Lookup, m.DefaultError
}

// SaveImage implements the ImageStore.SaveImage method
func (m *MockImageStore) SaveImage(ctx context.Context, req domain.ImageSaveRequest) (domain.ImageSaveResult, error) {
	m.SaveCalls.Add(1)
	if m.SaveImageFn != nil {
		return m.SaveImageFn(ctx, req)
	}
	return m.SaveResult, m.DefaultError
}
