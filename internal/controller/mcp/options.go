package mcpcontroller

import (
	"io"
	"net"
	"time"
)

type Option func(*Server)

func WithTransport(t string) Option {
	return func(s *Server) {
		if t != "" {
			s.transport = t
		}
	}
}

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

// WithStdio replaces the process stdin and stdout for the stdio transport.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.stdin = in
		s.stdout = out
	}
}
