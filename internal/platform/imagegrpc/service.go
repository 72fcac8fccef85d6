package imagegrpc

import (
	"context"

	"google.golang.org/grpc"
)

// Fully-qualified names of the greet.ImageService schema.
const (
	ServiceName                = "greet.ImageService"
	SaveImageMethod            = "/greet.ImageService/SaveImage"
	ObtenerImagenPorGuidMethod = "/greet.ImageService/ObtenerImagenPorGuid"
)

// ImageServiceServer is the server side of greet.ImageService. The gateway only
// consumes the service; the server side backs the fake image service and tests.
type ImageServiceServer interface {
	SaveImage(ctx context.Context, req *ImageRequest) (*SaveImageReply, error)
	ObtenerImagenPorGuid(ctx context.Context, req *GuidRequest) (*ImageByGuidReply, error)
}

// NewServer returns a grpc.Server that decodes this package's messages.
func NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ForceServerCodec(wireCodec{})}, opts...)
	return grpc.NewServer(opts...)
}

// RegisterImageServiceServer registers srv on s, which must be created by
// NewServer (or otherwise force the package codec).
func RegisterImageServiceServer(s grpc.ServiceRegistrar, srv ImageServiceServer) {
	s.RegisterService(&imageServiceDesc, srv)
}

var imageServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SaveImage", Handler: saveImageHandler},
		{MethodName: "ObtenerImagenPorGuid", Handler: obtenerImagenPorGuidHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/image.proto",
}

func saveImageHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageServiceServer).SaveImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SaveImageMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImageServiceServer).SaveImage(ctx, req.(*ImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func obtenerImagenPorGuidHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GuidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageServiceServer).ObtenerImagenPorGuid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObtenerImagenPorGuidMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImageServiceServer).ObtenerImagenPorGuid(ctx, req.(*GuidRequest))
	}
	return interceptor(ctx, in, info, handler)
}
