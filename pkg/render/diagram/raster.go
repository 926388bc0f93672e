package diagram

import (
	"context"

	"github.com/matzehuels/framegraph/pkg/layout"
	"github.com/matzehuels/framegraph/pkg/render"
)

// RasterOption configures PNG and PDF rendering.
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithSVGOptions passes options through to the underlying SVG renderer.
func WithSVGOptions(opts ...SVGOption) RasterOption {
	return func(r *rasterRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
// It has no effect on PDF output.
func WithScale(s float64) RasterOption {
	return func(r *rasterRenderer) { r.scale = s }
}

func newRasterRenderer(opts ...RasterOption) rasterRenderer {
	r := rasterRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPNG renders the diagram as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, d layout.Diagram, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts...)
	return render.ToPNG(ctx, RenderSVG(d, r.svgOpts...), r.scale)
}

// RenderPDF renders the diagram as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, d layout.Diagram, opts ...RasterOption) ([]byte, error) {
	r := newRasterRenderer(opts...)
	return render.ToPDF(ctx, RenderSVG(d, r.svgOpts...))
}
