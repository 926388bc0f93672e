// Package cli implements the framegraph command-line interface.
//
// Every editing command loads the model file, applies one mutation through
// the frame graph API and saves the file again, so the model on disk is
// always in a valid state. Rendering and the HTTP viewer share the cached
// pipeline in pkg/pipeline.
//
// # Commands
//
//   - frame, slot: edit frames and their slots
//   - search: syntactic (slot name) and semantic (slot value) search
//   - render: SVG, DOT, JSON, PNG or PDF diagrams
//   - export, import: convert between the flat-text and JSON formats
//   - serve: read-only HTTP viewer
//   - browse: interactive terminal browser
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framegraph/pkg/cache"
	"github.com/matzehuels/framegraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "framegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	// Persistent flags
	modelFlag  string
	configFlag string
	verbose    bool

	out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// modelPath resolves the model file: flag, then config, then default.
func (c *CLI) modelPath() string {
	if c.modelFlag != "" {
		return c.modelFlag
	}
	if c.Config.Model != "" {
		return c.Config.Model
	}
	return defaultModelPath
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.Logger), nil
}

// newCache opens Redis when configured, the file cache otherwise. A file
// cache that cannot be created degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.Config.Cache
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return cache.Scoped(rc, appName+":"), nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// pipelineOptions builds render options from config defaults.
func (c *CLI) pipelineOptions() (pipeline.Options, error) {
	r := c.Config.Render
	ttl, err := c.Config.Cache.ttl()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		VizType:  r.VizType,
		Formats:  r.Formats,
		Measurer: r.Measurer,
		Fill:     r.Fill,
		Scale:    r.Scale,
		TTL:      ttl,
		Logger:   c.Logger,
	}, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/framegraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/framegraph/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
