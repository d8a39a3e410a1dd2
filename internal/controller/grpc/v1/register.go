package grpcv1

import (
	"github.com/Egor213/LogiProbe/internal/metrics"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func RegisterServices(d Dispatcher, counters *metrics.Counters) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		RegisterToolServiceServer(s, NewToolController(d, counters))

		hs := health.NewServer()
		hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(s, hs)

		reflection.Register(s)
		grpc_prometheus.Register(s)
	}
}

// ServerOptions returns the interceptors every LogiProbe gRPC server runs with.
func ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
		grpc.ChainStreamInterceptor(grpc_prometheus.StreamServerInterceptor),
	}
}
