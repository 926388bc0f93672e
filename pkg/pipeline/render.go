package pipeline

import (
	"context"
	"fmt"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/layout"
	"github.com/matzehuels/framegraph/pkg/render/diagram"
	"github.com/matzehuels/framegraph/pkg/render/nodelink"
)

// RenderGraph renders g in every requested format without touching a cache.
func RenderGraph(ctx context.Context, g *frame.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return renderFormats(ctx, g, opts.Formats, opts)
}

// renderFormats renders g in formats. The diagram is only laid out when a
// format needs it.
func renderFormats(ctx context.Context, g *frame.Graph, formats []string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	dot := nodelink.ToDOT(g, dotOptions(opts))

	var d *layout.Diagram
	for _, format := range formats {
		var (
			data []byte
			err  error
		)
		switch {
		case format == FormatDOT:
			data = []byte(dot)
		case opts.IsNodelink():
			data, err = renderNodelink(ctx, dot, format, opts)
		default:
			if d == nil {
				built, err := BuildDiagram(ctx, g, opts)
				if err != nil {
					return nil, fmt.Errorf("layout: %w", err)
				}
				d = &built
			}
			data, err = renderFrames(ctx, *d, format, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderFrames renders the routed frame diagram.
func renderFrames(ctx context.Context, d layout.Diagram, format string, opts Options) ([]byte, error) {
	svgOpts := buildSVGOptions(opts)

	switch format {
	case FormatSVG:
		return diagram.RenderSVG(d, svgOpts...), nil
	case FormatJSON:
		return diagram.RenderJSON(d, diagram.WithJSONMeasurer(opts.Measurer))
	case FormatPNG:
		return diagram.RenderPNG(ctx, d, diagram.WithSVGOptions(svgOpts...), diagram.WithScale(opts.Scale))
	case FormatPDF:
		return diagram.RenderPDF(ctx, d, diagram.WithSVGOptions(svgOpts...))
	default:
		return nil, fgerrors.New(fgerrors.ErrCodeUnsupported, "unsupported frames format: %s", format)
	}
}

// renderNodelink renders the Graphviz node-link diagram.
func renderNodelink(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fgerrors.New(fgerrors.ErrCodeUnsupported, "unsupported nodelink format: %s", format)
	}
}

func buildSVGOptions(opts Options) []diagram.SVGOption {
	svgOpts := []diagram.SVGOption{diagram.WithFill(opts.Fill)}
	if opts.Interactive {
		svgOpts = append(svgOpts, diagram.WithInteraction())
	}
	if opts.EmbedFont {
		svgOpts = append(svgOpts, diagram.WithEmbeddedFont())
	}
	return svgOpts
}

func dotOptions(opts Options) nodelink.Options {
	return nodelink.Options{
		Detailed: opts.Detailed,
		Pinned:   opts.Pinned,
		Fill:     opts.Fill,
	}
}
