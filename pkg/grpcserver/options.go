package grpcserver

import (
	"net"
	"time"

	"google.golang.org/grpc"
)

type Option func(*Server)

func WithPort(port string) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort("", port)
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// WithServerOptions passes interceptors and other options to grpc.NewServer.
func WithServerOptions(opts ...grpc.ServerOption) Option {
	return func(s *Server) {
		s.serverOpts = append(s.serverOpts, opts...)
	}
}

// WithListener serves on an already bound listener, e.g. bufconn in tests.
func WithListener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}
