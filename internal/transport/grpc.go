package transport

import (
	"context"
	"errors"
	"net"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewGRPCServer builds a server with the recovery, tagging, metrics and
// logging interceptors and the health service registered.
func NewGRPCServer(logger *zap.Logger) (*grpc.Server, *health.Server) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(server)
	return server, healthServer
}

// ServeGRPC serves on addr until ctx is cancelled, then stops gracefully.
func ServeGRPC(ctx context.Context, logger *zap.Logger, server *grpc.Server, addr string) error {
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() {
		logger.Info("shutting down gRPC server")
		server.GracefulStop()
	})
	defer stop()

	logger.Info("starting gRPC server", zap.String("addr", socket.Addr().String()))
	if err := server.Serve(socket); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
