package mocks

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

// MockAuthorRepository implements service.AuthorRepository for testing
type MockAuthorRepository struct {
	ListFn   func(ctx context.Context) (json.RawMessage, error)
	GetFn    func(ctx context.Context, id string) (domain.Author, error)
	CreateFn func(ctx context.Context, body []byte) (json.RawMessage, error)

	// Default return values
	Authors      json.RawMessage
	Author       domain.Author
	DefaultError error

	ListCalls   atomic.Int32
	GetCalls    atomic.Int32
	CreateCalls atomic.Int32
}

// List implements the AuthorRepository.List method
func (m *MockAuthorRepository) List(ctx context.Context) (json.RawMessage, error) {
	m.ListCalls.Add(1)
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Authors, m.DefaultError
}

// Get implements the AuthorRepository.Get method
func (m *MockAuthorRepository) Get(ctx context.Context, id string) (domain.Author, error) {
	m.GetCalls.Add(1)
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Author, m.DefaultError
}

// Create implements the AuthorRepository.Create method
func (m *MockAuthorRepository) Create(ctx context.Context, body []byte) (json.RawMessage, error) {
	m.CreateCalls.Add(1)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, body)
	}
	return json.RawMessage(body), m.DefaultError
}
