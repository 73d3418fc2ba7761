package server

import (
	"compress/gzip"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compression configures response compression.
type Compression struct {
	Enabled bool
	// Level is one of fastest, default, best or none.
	Level   string
	MinSize int
}

// newCompressionHandler wraps h with gzip compression. It returns h unchanged
// when compression is disabled or the level is "none".
func newCompressionHandler(h http.Handler, cfg Compression) (http.Handler, error) {
	if !cfg.Enabled || cfg.Level == "none" {
		return h, nil
	}

	var level int
	switch cfg.Level {
	case "fastest":
		level = gzip.BestSpeed
	case "best":
		level = gzip.BestCompression
	default:
		level = gzip.DefaultCompression
	}

	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(cfg.MinSize),
		gzhttp.CompressionLevel(level),
	)
	if err != nil {
		return nil, err
	}
	return wrapper(h), nil
}
