// Package diagram renders a [layout.Diagram] as SVG, PNG, PDF or JSON.
//
// # SVG Output
//
// [RenderSVG] draws every frame as a filled rectangle holding its title, a
// separator line, a bold "Slots:" header and one line per slot, then draws
// one arrow per reference slot on top:
//
//	d := layout.Build(g, measurer)
//	svg := diagram.RenderSVG(d,
//	    diagram.WithFill("#d3dfac"),
//	    diagram.WithInteraction(),
//	)
//
// # SVG Options
//
//   - [WithFill]: Box background color
//   - [WithMargin]: Blank border around the drawing
//   - [WithEmbeddedFont]: Embed the measuring font so text fits its box exactly
//   - [WithInteraction]: Highlight a frame and its arrows on hover
//
// # Raster Output
//
// [RenderPNG] and [RenderPDF] convert the SVG with rsvg-convert.
//
// # JSON Output
//
// [RenderJSON] exports the computed boxes and edges with the drawing bounds,
// for tools that want to draw the diagram themselves.
package diagram
