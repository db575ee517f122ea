// Package health exposes the gRPC health checking protocol so that
// orchestrators can probe the transfer service.
package health

import (
	"context"
	"net"

	"github.com/dmitrijs2005/peerlink/internal/logging"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// TransferService is the service name reported alongside the overall status.
const TransferService = "peerlink.Transfer"

type Server struct {
	address string
	health  *grpchealth.Server
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger) *Server {
	return &Server{
		address: a,
		health:  grpchealth.NewServer(),
		logger:  l.With("module", "health_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve reports SERVING on lis until ctx is done, then flips every service
// to NOT_SERVING and stops gracefully.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	healthpb.RegisterHealthServer(srv, s.health)
	reflection.Register(srv)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(TransferService, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping health server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting health server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
