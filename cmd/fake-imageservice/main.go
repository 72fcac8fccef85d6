// Package main runs an in-memory image service for local development and
// end-to-end testing of the gateway.
//
// Usage: fake-imageservice [-addr localhost:5272]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ceron-eng/autores-gateway/internal/platform/imagegrpc"
)

func main() {
	addr := flag.String("addr", "localhost:5272", "gRPC listen address")
	flag.Parse()

	if err := run(*addr); err != nil {
		log.Fatal(err)
	}
}

func run(addr string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := imagegrpc.NewServer()
	imagegrpc.RegisterImageServiceServer(srv, imagegrpc.NewMemoryServer())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down image service")
		srv.GracefulStop()
	}()

	logger.Info("image service listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("image service stopped: %w", err)
	}
	return nil
}
