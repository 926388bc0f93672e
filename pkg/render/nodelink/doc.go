// Package nodelink renders frame graphs as Graphviz node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// frames appear as boxes and reference slots as arrows. It is an alternative
// to the box diagram for large models where Graphviz's automatic placement
// reads better than the hand-placed canvas.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels list every slot
//   - Pinned: When true, nodes keep their canvas positions (neato engine)
//   - Fill: Node background color
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
