// Package layout turns a frame graph into drawable primitives.
//
// # Boxes
//
// Every frame is drawn as a rectangle whose top-left corner is the frame's
// position. [BoxFor] sizes it: the width is the measured width of the
// frame's box label plus [Padding], the height is [BaseHeight] plus
// [SlotHeight] per slot. Inside the box sit the centered title, a separator
// line, the "Slots:" header and one line per slot.
//
// Widths come from a [Measurer]. [FontMeasurer] measures with the Go Regular
// TrueType face, which is also the font embedded in SVG output.
// [HeuristicMeasurer] estimates from the rune count and needs no font data.
//
// # Routing
//
// [Route] joins a source box to a target box with a straight line between
// two corners chosen by the target's quadrant relative to the source, then
// adds an arrowhead at the target end. It is a heuristic: lines may cross
// other boxes.
//
// # Diagrams
//
// [Build] produces a [Diagram] with one [Box] per frame and one [Edge] per
// reference slot. Renderers in the render packages consume it.
package layout
