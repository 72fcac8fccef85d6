// Package service contains the gateway's composition logic. AuthorService
// translates each use case into the right sequence of upstream calls: the
// author REST service, the image service, or both, and combines their results.
//
// The service receives its upstream handles through constructor injection as
// the AuthorRepository and ImageStore interfaces, so the HTTP layer and tests
// can substitute fakes. It never writes HTTP responses itself; it reports
// outcomes through the sentinel errors in errors.go, which the API layer maps
// to status codes.
//
// Each call is linear. GetAuthor must finish the author fetch before it can
// look up the image keyed by the author's autorLibroId; no other fan-out
// exists, and no state is shared between calls.
package service
