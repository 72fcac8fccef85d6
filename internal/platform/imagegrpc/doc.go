// Package imagegrpc is the client for the gRPC image service (greet.ImageService).
//
// The schema lives in api/proto/image.proto. Messages are encoded directly
// with protowire by field number and sent through grpc.ClientConn.Invoke with
// a forced codec, so the client has no generated code to keep in sync: the
// field numbers in messages.go are the contract.
//
// Client.FetchImageByGUID and Client.SaveImage return *domain.UpstreamError on
// failure. gRPC Unavailable, DeadlineExceeded and Canceled map to
// domain.ErrUpstreamUnavailable; every other status maps to
// domain.ErrUpstreamRejected. A lookup for an unknown GUID is not an error: the
// service answers Success=false.
//
// MemoryServer implements the server side in memory. It backs
// cmd/fake-imageservice for local development and the package tests.
package imagegrpc
