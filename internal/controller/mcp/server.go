package mcpcontroller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Egor213/LogiProbe/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportNone  = "none"

	defaultPort            = "8000"
	defaultShutdownTimeout = 3 * time.Second
)

type Dispatcher interface {
	Call(ctx context.Context, name string, args map[string]any) any
	Catalog() *tools.Catalog
}

// NewMCPServer exposes every catalog tool with its raw input schema.
func NewMCPServer(name, version string, d Dispatcher) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	for _, t := range d.Catalog().Tools() {
		s.AddTool(mcp.NewToolWithRawSchema(t.Name, t.Description, t.InputSchema), toolHandler(d, t.Name))
	}
	return s
}

func toolHandler(d Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := d.Call(ctx, name, req.GetArguments())

		b, err := json.Marshal(res)
		if err != nil {
			log.WithError(err).WithField("tool", name).Error("Cannot encode tool result")
			return mcp.NewToolResultError("cannot encode tool result"), nil
		}
		if _, failed := res.(tools.ErrorResult); failed {
			return mcp.NewToolResultError(string(b)), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	}
}

type Server struct {
	mcp             *server.MCPServer
	transport       string
	addr            string
	stdin           io.Reader
	stdout          io.Writer
	httpServer      *server.StreamableHTTPServer
	cancel          context.CancelFunc
	notify          chan error
	shutdownTimeout time.Duration
}

func New(s *server.MCPServer, opts ...Option) (*Server, error) {
	srv := &Server{
		mcp:             s,
		transport:       TransportStdio,
		addr:            net.JoinHostPort("", defaultPort),
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(srv)
	}

	switch srv.transport {
	case TransportStdio:
		srv.startStdio()
	case TransportHTTP:
		srv.startHTTP()
	case TransportNone:
	default:
		return nil, fmt.Errorf("unknown mcp transport %q", srv.transport)
	}
	return srv, nil
}

func (s *Server) startStdio() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		err := server.NewStdioServer(s.mcp).Listen(ctx, s.stdin, s.stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.notify <- err
		}
		close(s.notify)
	}()
}

func (s *Server) startHTTP() {
	s.httpServer = server.NewStreamableHTTPServer(s.mcp)

	go func() {
		err := s.httpServer.Start(s.addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.notify <- err
		}
		close(s.notify)
	}()
}

func (s *Server) Transport() string {
	return s.transport
}

// Notify is never closed for TransportNone.
func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
