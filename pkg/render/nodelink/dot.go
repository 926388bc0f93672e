package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed lists every slot below the frame title.
	// When false, only the frame name is shown.
	Detailed bool

	// Pinned places nodes at the frames' canvas positions using the neato
	// engine instead of letting dot rank them.
	Pinned bool

	// Fill is the node fill color. Empty means the diagram default.
	Fill string
}

const defaultFill = "#d3dfac"

// ToDOT converts a frame graph to Graphviz DOT. Frames become box nodes and
// every reference slot becomes an edge from the owning frame to its target.
// The result can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *frame.Graph, opts Options) string {
	fill := opts.Fill
	if fill == "" {
		fill = defaultFill
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Pinned {
		buf.WriteString("  layout=neato;\n")
	} else {
		buf.WriteString("  rankdir=LR;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=filled, fillcolor=%q, fontsize=16, margin=\"0.2,0.1\"];\n", fill)
	buf.WriteString("  edge [arrowsize=0.8];\n")
	buf.WriteString("\n")

	for _, p := range g.Frames() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(p.Frame, opts.Detailed))}
		if opts.Pinned {
			// DOT's y axis points up.
			attrs = append(attrs, fmt.Sprintf("pos=\"%d,%d!\"", p.Position.X, -p.Position.Y))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", p.Frame.Name(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range g.Frames() {
		for _, s := range p.Frame.Slots() {
			target, ok := g.Target(s.Value)
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.Frame.Name(), target.Name())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// fmtLabel builds a node label. Detailed labels put the title and each
// slot on separate lines.
func fmtLabel(f *frame.Frame, detailed bool) string {
	if !detailed {
		return f.Name()
	}
	lines := []string{f.DisplayLabel()}
	for _, s := range f.Slots() {
		lines = append(lines, frame.FormatSlot(s))
	}
	return strings.Join(lines, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
