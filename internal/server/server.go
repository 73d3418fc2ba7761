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
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
)

// DefaultShutdownTimeout bounds how long Serve waits for in-flight requests.
const DefaultShutdownTimeout = 30 * time.Second

// Options configures a Server.
type Options struct {
	Source     *toolcatalog.Source
	Calculator domain.CalculatorService
	// MCP, when set, is served over streamable HTTP at /mcp.
	MCP        *mcp.Server

	// AccessLog receives one line per request; nil means os.Stdout.
	AccessLog io.Writer
	// LogFormat is "text" or "json".
	LogFormat   string
	Compression Compression

	// Logger receives lifecycle messages; nil means log.Default().
	Logger          *log.Logger
	ShutdownTimeout time.Duration
}

// Server is the calcbox HTTP API.
type Server struct {
	source     *toolcatalog.Source
	calculator domain.CalculatorService
	markdown   goldmark.Markdown
	logger     *log.Logger
	shutdown   time.Duration
	handler    http.Handler
}

// New builds the router and middleware chain.
func New(opts Options) (*Server, error) {
	if opts.Source == nil || opts.Calculator == nil {
		return nil, errors.New("server: source and calculator are required")
	}
	s := &Server{
		source:     opts.Source,
		calculator: opts.Calculator,
		markdown:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:     opts.Logger,
		shutdown:   opts.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.shutdown <= 0 {
		s.shutdown = DefaultShutdownTimeout
	}
	access := opts.AccessLog
	if access == nil {
		access = os.Stdout
	}

	var handler http.Handler = s.routes()
	handler, err := newCompressionHandler(handler, opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("compression: %w", err)
	}
	if opts.MCP != nil {
		// MCP streams its responses, so it sits outside the compressor.
		mux := http.NewServeMux()
		mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return opts.MCP
		}, nil))
		mux.Handle("/", handler)
		handler = mux
	}
	s.handler = newRequestLogger(handler, access, opts.LogFormat)
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/tools", s.handleTools)
		r.Get("/tools/{slug}", s.handleTool)
		r.Post("/tools/{slug}/run", s.handleRun)
		r.Get("/units", s.handleUnits)
		r.Get("/units/{family}", s.handleUnitFamily)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("calcbox listening on http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
