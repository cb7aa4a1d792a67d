package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-medlux/internal/config"
	myGRPC "github.com/MKhiriev/go-medlux/internal/handler/grpc"
	"github.com/MKhiriev/go-medlux/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, err
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(withLogger(logger)))
	handler.Register(s)

	return &grpcServer{
		handler:  handler,
		server:   s,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(g.listener)
}

func (g *grpcServer) shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}

// withLogger attaches the server logger to the call context and logs
// failed calls.
func withLogger(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(log.WithContext(ctx), req)
		if err != nil {
			log.Debug().Err(err).Str("method", info.FullMethod).Msg("gRPC call failed")
		}
		return resp, err
	}
}
