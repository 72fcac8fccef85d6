package imagegrpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/ceron-eng/autores-gateway/internal/config"
	"github.com/ceron-eng/autores-gateway/internal/domain"
	"github.com/ceron-eng/autores-gateway/internal/platform/logger"
	"github.com/ceron-eng/autores-gateway/internal/platform/metrics"
	"github.com/ceron-eng/autores-gateway/internal/redact"
)

// Operation names reported in errors, logs and metrics.
const (
	OpFetchImage = "ObtenerImagenPorGuid"
	OpSaveImage  = "SaveImage"
)

// Client talks to the image service over a single multiplexed connection,
// created once and shared by all requests.
type Client struct {
	conn     *grpc.ClientConn
	timeout  time.Duration
	logger   *slog.Logger
	observer metrics.UpstreamObserver
}

// Option customizes a Client.
type Option func(*clientOptions)

type clientOptions struct {
	dialOpts []grpc.DialOption
	observer metrics.UpstreamObserver
}

// WithDialOptions appends dial options, e.g. a bufconn dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *clientOptions) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

// WithObserver records every call with the given observer.
func WithObserver(obs metrics.UpstreamObserver) Option {
	return func(o *clientOptions) {
		o.observer = obs
	}
}

// NewClient creates the connection to cfg.Addr. The connection is established
// lazily, so an unreachable image service surfaces on the first call.
func NewClient(cfg config.ImageServiceConfig, log *slog.Logger, opts ...Option) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}
	o := clientOptions{observer: metrics.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(wireCodec{})),
	}, o.dialOpts...)

	conn, err := grpc.NewClient(cfg.Addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create image service client: %w", err)
	}

	return &Client{
		conn:     conn,
		timeout:  cfg.Timeout,
		logger:   log.With("component", "imagegrpc"),
		observer: o.observer,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// FetchImageByGUID looks up the image stored under guid. A missing image is
// reported as Success=false with a nil error.
func (c *Client) FetchImageByGUID(ctx context.Context, guid string) (domain.ImageLookupResult, error) {
	var reply ImageByGuidReply
	if err := c.invoke(ctx, OpFetchImage, ObtenerImagenPorGuidMethod, &GuidRequest{Guid: guid}, &reply); err != nil {
		return domain.ImageLookupResult{}, err
	}
	return domain.ImageLookupResult{Success: reply.Success, Image: reply.Image}, nil
}

// SaveImage stores req in the image service and returns its reply unchanged.
func (c *Client) SaveImage(ctx context.Context, req domain.ImageSaveRequest) (domain.ImageSaveResult, error) {
	var reply SaveImageReply
	in := &ImageRequest{Guid: req.GUID, Name: req.Name, Image: req.Image}
	if err := c.invoke(ctx, OpSaveImage, SaveImageMethod, in, &reply); err != nil {
		return domain.ImageSaveResult{}, err
	}
	return domain.ImageSaveResult{Success: reply.Success, Message: reply.Message}, nil
}

func (c *Client) invoke(ctx context.Context, op, method string, in, out message) (err error) {
	start := time.Now()
	defer func() {
		c.observer.ObserveUpstream(domain.UpstreamImages, op, err, time.Since(start))
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if callErr := c.conn.Invoke(ctx, method, in, out); callErr != nil {
		err = classify(op, callErr)
		logger.FromContextOrDefault(ctx, c.logger).Error("image service call failed",
			"op", op,
			"grpc_code", status.Code(callErr).String(),
			"error", redact.Error(callErr))
		return err
	}
	return nil
}

// classify maps a gRPC failure onto the upstream error taxonomy.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewUnavailableError(domain.UpstreamImages, op, err)
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return domain.NewUnavailableError(domain.UpstreamImages, op, err)
	default:
		return domain.NewRejectedError(domain.UpstreamImages, op, 0, err)
	}
}
