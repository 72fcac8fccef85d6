// Package mocks provides centralized mock implementations for testing.
//
// Each mock has one function field per interface method plus default return
// values used when the function field is nil, and counts its calls so tests
// can assert that an upstream was, or was not, contacted.
//
// Usage:
//
//	import "github.com/ceron-eng/autores-gateway/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    images := &mocks.MockImageStore{
//	        FetchImageByGUIDFn: func(ctx context.Context, guid string) (domain.ImageLookupResult, error) {
//	            return domain.ImageLookupResult{Success: false}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
