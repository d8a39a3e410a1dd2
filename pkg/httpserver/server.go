package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultAddr            = ":80"
	defaultShutdownTimeout = 3 * time.Second
)

// Server runs an http.Server in the background. Bind and serve errors
// arrive on Notify.
type Server struct {
	server          *http.Server
	listener        net.Listener
	notify          chan error
	shutdownTimeout time.Duration
}

func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			Addr:         defaultAddr,
		},
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		defer close(s.notify)

		if s.listener == nil {
			l, err := net.Listen("tcp", s.server.Addr)
			if err != nil {
				s.notify <- errorsUtils.WrapPathErr(err)
				return
			}
			s.listener = l
		}

		err := s.server.Serve(s.listener)
		if !errors.Is(err, http.ErrServerClosed) {
			s.notify <- err
		}
	}()
}

func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
