package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level log lines.
// Failures are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l. A nil logger uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, frames int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("loaded", "source", source, "frames", frames, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, boxes, edges int, d time.Duration) {
	h.logger.Debug("layout", "boxes", boxes, "edges", edges, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string, frames int) {
	h.logger.Debug("render", "format", format, "frames", frames)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	l := h.logger.With("method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
	if status >= 500 {
		l.Warn("response")
		return
	}
	l.Info("response")
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
