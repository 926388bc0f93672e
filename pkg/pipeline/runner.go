package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framegraph/pkg/cache"
	"github.com/matzehuels/framegraph/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Render runs load → layout → render on model bytes. Artifacts found in the
// cache are reused; only the missing formats are rendered and stored.
func (r *Runner) Render(ctx context.Context, model []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		ModelHash: cache.Hash(model),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := Load(ctx, model, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Source, err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Frames = g.Len()
	result.Stats.References = countReferences(g)

	opts.Logger.Debug("loaded model",
		"source", opts.Source,
		"frames", result.Stats.Frames,
		"references", result.Stats.References,
		"duration", result.Stats.LoadTime)

	// Stages 2 and 3: Layout and render whatever the cache cannot serve
	var missing []string
	for _, format := range opts.Formats {
		if data, ok := r.lookup(ctx, result.ModelHash, format, opts); ok {
			result.Artifacts[format] = data
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			continue
		}
		missing = append(missing, format)
	}
	result.CacheInfo.RenderHit = len(missing) == 0

	if len(missing) > 0 {
		renderStart := time.Now()
		hooks := observability.Pipeline()
		for _, format := range missing {
			hooks.OnRenderStart(ctx, format, result.Stats.Frames)
		}

		rendered, err := renderFormats(ctx, g, missing, opts)
		elapsed := time.Since(renderStart)
		for _, format := range missing {
			hooks.OnRenderComplete(ctx, format, len(rendered[format]), elapsed, err)
		}
		if err != nil {
			return nil, err
		}

		for format, data := range rendered {
			result.Artifacts[format] = data
			r.store(ctx, result.ModelHash, format, data, opts)
		}
		result.Stats.RenderTime = elapsed
	}

	opts.Logger.Info("rendered",
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.LoadTime+result.Stats.RenderTime)

	return result, nil
}

// ArtifactKey returns the cache key of one artifact.
func ArtifactKey(modelHash, format string, opts Options) string {
	return cache.Key("artifact", modelHash, format, opts.ArtifactKey(format))
}

func (r *Runner) lookup(ctx context.Context, modelHash, format string, opts Options) ([]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, ArtifactKey(modelHash, format, opts))
	if err != nil {
		opts.Logger.Warn("cache read failed", "format", format, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, format)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, format)
	return data, true
}

func (r *Runner) store(ctx context.Context, modelHash, format string, data []byte, opts Options) {
	if err := r.Cache.Set(ctx, ArtifactKey(modelHash, format, opts), data, opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, format, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
