package app

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that points at a config file.
const ConfigEnv = "CALCBOX_CONFIG"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"home"`       // data directory, e.g. $HOME/.calcbox
	Locale    string `yaml:"locale"`     // display locale; empty uses the saved one, then en
	RemoteURL string `yaml:"remote_url"` // catalog server, e.g. http://127.0.0.1:8080

	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Compression CompressionConfig `yaml:"compression"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	History     HistoryConfig     `yaml:"history"`

	HTTP *http.Client `yaml:"-"` // optional; defaults to a client with a 15s timeout
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Format string `yaml:"format"` // text or json
}

type CompressionConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // fastest, default, best, none
	MinSize int    `yaml:"min_size"`
}

type CatalogConfig struct {
	Path  string `yaml:"path"` // empty uses the built-in catalog
	Watch bool   `yaml:"watch"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means <home>/history.db
}

// Defaults returns the configuration used when no file sets a value.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging:     LoggingConfig{Format: "text"},
		Compression: CompressionConfig{Enabled: true, Level: "default", MinSize: 1024},
		History:     HistoryConfig{Enabled: true},
	}
}

// LoadConfig reads the config file at path. With no explicit path it tries
// $CALCBOX_CONFIG and then <home>/config.yaml; a missing default file yields
// Defaults(). home is also the default for the home key. ${VAR} and
// ${VAR:-default} are expanded before parsing.
func LoadConfig(path, home string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Defaults()
	cfg.Home = home

	explicit := path != ""
	if !explicit {
		path = getenv(ConfigEnv)
		explicit = path != ""
	}
	if !explicit && home != "" {
		path = filepath.Join(home, "config.yaml")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = interpolateEnv(data, getenv)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	if cfg.Catalog.Path != "" && !filepath.IsAbs(cfg.Catalog.Path) {
		cfg.Catalog.Path = filepath.Join(baseDir, cfg.Catalog.Path)
	}
	if cfg.History.Path != "" && !filepath.IsAbs(cfg.History.Path) {
		cfg.History.Path = filepath.Join(baseDir, cfg.History.Path)
	}
	return cfg, nil
}

// envPattern matches ${VAR} or ${VAR:-default}.
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Home == "" {
		errs = append(errs, "home is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port: %d (must be 1-65535)", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must not be negative")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be json or text)", c.Logging.Format))
	}
	switch c.Compression.Level {
	case "", "fastest", "default", "best", "none":
	default:
		errs = append(errs, fmt.Sprintf("invalid compression level: %s (must be fastest, default, best or none)", c.Compression.Level))
	}
	if c.Compression.MinSize < 0 {
		errs = append(errs, "compression.min_size must not be negative")
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		errs = append(errs, "catalog.watch needs catalog.path")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr is the server listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// HistoryPath is the SQLite file for run history.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(c.Home, "history.db")
}
