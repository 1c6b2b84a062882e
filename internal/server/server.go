package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/montumodi/mongodb-atlas-mcp-server/internal/config"
	"github.com/montumodi/mongodb-atlas-mcp-server/internal/tools"
	"github.com/montumodi/mongodb-atlas-mcp-server/pkg/logging"
)

// Name is the implementation name announced during the MCP handshake.
const Name = "mongodb-atlas-mcp-server"

// ReadyMessage is written to the diagnostic stream once the stdio transport is connected.
const ReadyMessage = "MongoDB Atlas MCP Server running on stdio"

const (
	ssePath        = "/sse"
	messagePath    = "/message"
	streamablePath = "/mcp"
	healthPath     = "/healthz"

	shutdownTimeout = 5 * time.Second
)

// Server exposes a Dispatcher over one MCP transport.
type Server struct {
	config     config.ServerConfig
	dispatcher *tools.Dispatcher
	mcpServer  *mcpserver.MCPServer

	stdin  io.Reader
	stdout io.Writer
	diag   io.Writer
}

// Option customizes a Server.
type Option func(*Server)

// WithStdio replaces the process stdin/stdout used by the stdio transport.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.stdin = in
		s.stdout = out
	}
}

// WithDiagnostics sets where the readiness line and transport errors go. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Server) {
		s.diag = w
	}
}

// New builds the MCP server and registers every tool of the dispatcher's registry.
func New(cfg config.ServerConfig, dispatcher *tools.Dispatcher, version string, opts ...Option) *Server {
	s := &Server{
		config:     cfg,
		dispatcher: dispatcher,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		diag:       os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = mcpserver.NewMCPServer(
		Name,
		version,
		mcpserver.WithToolCapabilities(true),
	)

	registered := dispatcher.Registry().Tools()
	serverTools := make([]mcpserver.ServerTool, 0, len(registered))
	for _, t := range registered {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool:    t.Definition,
			Handler: s.handle,
		})
	}
	s.mcpServer.AddTools(serverTools...)
	logging.Debug("Server", "Registered %d tools", len(serverTools))

	return s
}

// MCPServer returns the underlying mcp-go server, e.g. for in-process clients.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

func (s *Server) handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.dispatcher.Call(ctx, req.Params.Name, req.GetArguments())
}

// Run serves the configured transport until ctx is cancelled or the transport fails.
// In-flight calls are not drained on cancellation.
func (s *Server) Run(ctx context.Context) error {
	switch s.config.Transport {
	case config.TransportStdio, "":
		return s.runStdio(ctx)
	case config.TransportSSE, config.TransportStreamableHTTP:
		return s.runHTTP(ctx)
	default:
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}
}

func (s *Server) runStdio(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(log.New(s.diag, "", log.LstdFlags))

	fmt.Fprintln(s.diag, ReadyMessage)

	err := stdio.Listen(ctx, s.stdin, s.stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

// Handler returns the HTTP router for the configured network transport.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})

	switch s.config.Transport {
	case config.TransportSSE:
		sse := mcpserver.NewSSEServer(s.mcpServer,
			mcpserver.WithBaseURL("http://"+s.address()),
			mcpserver.WithSSEEndpoint(ssePath),
			mcpserver.WithMessageEndpoint(messagePath),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		r.Handle(ssePath, sse.SSEHandler())
		r.Handle(messagePath, sse.MessageHandler())
	default:
		r.Handle(streamablePath, mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath(streamablePath),
		))
	}

	return r
}

func (s *Server) address() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

func (s *Server) runHTTP(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.address(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server", "Serving MCP over %s on %s", s.config.Transport, httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logging.Error("Server", err, "%s transport failed", s.config.Transport)
			return fmt.Errorf("%s transport: %w", s.config.Transport, err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("Server", "Shutting down %s transport", s.config.Transport)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		// Open SSE streams never go idle.
		_ = httpServer.Close()
	}
	return nil
}
