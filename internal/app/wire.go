package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	"calcbox/internal/mcptools"
	"calcbox/internal/remote"
	"calcbox/internal/server"
	catalogsvc "calcbox/internal/services/catalog"
	"calcbox/internal/services/calculator"
	"calcbox/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI and servers.
type Wire struct {
	Config      *Config
	Locale      string
	Source      *toolcatalog.Source
	Preferences domain.PreferenceStore
	History     domain.HistoryStore // nil when history is disabled
	Catalog     *catalogsvc.Service
	Calculator  *calculator.Service
	Remote      domain.CatalogClient // nil without a remote URL
	HTTP        *http.Client
	Logger      *log.Logger

	historyDB *store.HistoryDB
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	logger := log.New(os.Stderr, "calcbox: ", log.LstdFlags)

	src, err := toolcatalog.NewSource(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	prefs := store.NewPreferenceFileStore(cfg.Home)
	locale, err := resolveLocale(cfg.Locale, prefs)
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Config:      cfg,
		Locale:      locale,
		Source:      src,
		Preferences: prefs,
		Logger:      logger,
	}

	if cfg.History.Enabled {
		db, err := store.OpenHistoryDB(cfg.HistoryPath())
		if err != nil {
			return nil, err
		}
		w.historyDB = db
		w.History = db
	}

	// Ensure an HTTP client is available for outbound calls
	w.HTTP = cfg.HTTP
	if w.HTTP == nil {
		w.HTTP = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.RemoteURL != "" {
		w.Remote = remote.NewHTTP(cfg.RemoteURL, w.HTTP)
	}

	w.Catalog = catalogsvc.New(src, prefs)
	w.Calculator = calculator.New(src, calculator.Options{
		History: w.History,
		Locale:  locale,
		Logger:  logger,
	})
	return w, nil
}

// WatchCatalog reloads an on-disk catalog when it changes, if enabled.
func (w *Wire) WatchCatalog(ctx context.Context) error {
	if !w.Config.Catalog.Watch || w.Source.Path() == "" {
		return nil
	}
	return w.Source.Watch(ctx, w.Logger)
}

// MCP builds the MCP server over the wired calculator.
func (w *Wire) MCP(version string) *mcp.Server {
	return mcptools.NewServer(&mcptools.Tools{
		Source:     w.Source,
		Calculator: w.Calculator,
		Locale:     w.Locale,
	}, version)
}

// Server builds the HTTP server from the config, with MCP mounted at /mcp.
func (w *Wire) Server(version string) (*server.Server, error) {
	cfg := w.Config
	return server.New(server.Options{
		Source:     w.Source,
		Calculator: w.Calculator,
		MCP:        w.MCP(version),
		AccessLog:  os.Stdout,
		LogFormat:  cfg.Logging.Format,
		Compression: server.Compression{
			Enabled: cfg.Compression.Enabled,
			Level:   cfg.Compression.Level,
			MinSize: cfg.Compression.MinSize,
		},
		Logger:          w.Logger,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
}

// Serve runs the HTTP server on the configured address until ctx is
// cancelled, reloading the catalog on change when catalog.watch is set.
func (w *Wire) Serve(ctx context.Context, version string) error {
	srv, err := w.Server(version)
	if err != nil {
		return err
	}
	if err := w.WatchCatalog(ctx); err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	return srv.Run(ctx, w.Config.Addr())
}

// App returns the CLI facade over the wired services.
func (w *Wire) App() *App {
	return New(w.Catalog, w.Calculator, w.History, w.Preferences, w.Remote)
}

// Close releases the history database.
func (w *Wire) Close() error {
	if w.historyDB == nil {
		return nil
	}
	return w.historyDB.Close()
}

// resolveLocale prefers the configured locale, then the saved one, then en.
func resolveLocale(configured string, prefs domain.PreferenceStore) (string, error) {
	if configured != "" {
		return configured, nil
	}
	p, err := prefs.LoadPreferences()
	if err != nil {
		return "", fmt.Errorf("load preferences: %w", err)
	}
	if p.Locale != "" {
		return p.Locale, nil
	}
	return "en", nil
}

// ErrNoRemote is returned when a remote operation is requested without a server URL.
var ErrNoRemote = errors.New("no server configured. use --server or remote_url")
