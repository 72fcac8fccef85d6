package imagegrpc

import (
	"context"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MemoryServer is an in-memory ImageServiceServer keyed by GUID.
type MemoryServer struct {
	mu     sync.RWMutex
	images map[string]storedImage
}

type storedImage struct {
	name  string
	image []byte
}

// NewMemoryServer returns an empty MemoryServer.
func NewMemoryServer() *MemoryServer {
	return &MemoryServer{images: make(map[string]storedImage)}
}

// SaveImage stores the image, replacing any previous image under the same GUID.
func (s *MemoryServer) SaveImage(_ context.Context, req *ImageRequest) (*SaveImageReply, error) {
	if len(req.Image) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[req.Guid] = storedImage{name: req.Name, image: append([]byte(nil), req.Image...)}

	return &SaveImageReply{Success: true, Message: "Image saved successfully"}, nil
}

// ObtenerImagenPorGuid returns the stored image or Success=false.
func (s *MemoryServer) ObtenerImagenPorGuid(_ context.Context, req *GuidRequest) (*ImageByGuidReply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[req.Guid]
	if !ok {
		return &ImageByGuidReply{Success: false}, nil
	}
	return &ImageByGuidReply{Success: true, Image: append([]byte(nil), img.image...)}, nil
}

// Len returns the number of stored images.
func (s *MemoryServer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
