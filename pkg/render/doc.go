// Package render provides visualization rendering for frame graphs.
//
// # Overview
//
// This package contains the output side of the editor. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Box-and-arrow diagrams (in [diagram] subpackage)
//   - Graphviz node-link export (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The process is bound to the
// given context.
//
//	svg := diagram.RenderSVG(d)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Diagrams
//
// The [diagram] subpackage draws the layout computed by the layout package:
// one filled box per frame listing its slots, and one arrow per reference
// slot, routed between box corners.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage exports the graph as Graphviz DOT with frames as
// record-shaped nodes and references as labeled edges, and renders it to
// SVG in-process.
//
// [diagram]: github.com/matzehuels/framegraph/pkg/render/diagram
// [nodelink]: github.com/matzehuels/framegraph/pkg/render/nodelink
package render
