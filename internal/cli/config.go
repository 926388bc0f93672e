package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// configFileName is looked up in the working directory.
	configFileName = appName + ".toml"

	defaultModelPath = "frame_model.fm"
	defaultServeAddr = "localhost:8080"
)

// Config is the on-disk configuration. Flags override config values, which
// override built-in defaults.
type Config struct {
	Model  string       `toml:"model"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig holds defaults for the render command and the viewer.
type RenderConfig struct {
	VizType  string   `toml:"viz_type"`
	Formats  []string `toml:"formats"`
	Measurer string   `toml:"measurer"`
	Fill     string   `toml:"fill"`
	Scale    float64  `toml:"scale"`
}

// ServeConfig holds the viewer's listen address.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects the artifact cache backend. A Redis address switches
// from the file cache to Redis.
type CacheConfig struct {
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	TTL           string `toml:"ttl"`
}

// ttl parses the configured TTL. Empty means the pipeline default.
func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("cache.ttl: %w", err)
	}
	return d, nil
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Model: defaultModelPath,
		Serve: ServeConfig{Addr: defaultServeAddr},
	}
}

// loadConfig reads the first config file found. An explicit path must exist;
// the implicit locations are optional. It returns the path that was used, or
// "" when running on defaults.
func loadConfig(explicit string) (Config, string, error) {
	cfg := defaultConfig()

	candidates := []string{explicit}
	if explicit == "" {
		candidates = []string{configFileName}
		if dir, err := configDir(); err == nil {
			candidates = append(candidates, filepath.Join(dir, "config.toml"))
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) && explicit == "" {
			continue
		}
		if err != nil {
			return cfg, "", fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("parse config %s: %w", path, err)
		}
		if _, err := cfg.Cache.ttl(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}
	return cfg, "", nil
}
