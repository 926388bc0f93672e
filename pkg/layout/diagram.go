package layout

import (
	"math"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// Box metrics, in pixels.
const (
	FontSize   = 16.0
	Padding    = 40.0 // horizontal room added to the widest label
	BaseHeight = 75.0 // height of a box without slots
	SlotHeight = 20.0 // height added per slot

	textInset      = 15.0
	titleBaseline  = 25.0
	separatorY     = 35.0
	headerBaseline = 55.0
)

// SlotsHeader is the bold caption above a box's slot lines.
const SlotsHeader = "Slots:"

// Text is a single line of text anchored at its baseline. Centered text is
// anchored at its horizontal middle, other text at its left end.
type Text struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Value    string  `json:"value"`
	Centered bool    `json:"centered,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
}

// Line is a straight segment.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Box is the drawable form of one frame.
type Box struct {
	Frame     string `json:"frame"`
	Rect      Rect   `json:"rect"`
	Title     Text   `json:"title"`
	Separator Line   `json:"separator"`
	Header    Text   `json:"header"`
	Slots     []Text `json:"slots"`
}

// Diagram holds every primitive needed to draw a graph: one box per frame
// in insertion order and one edge per reference slot.
type Diagram struct {
	Boxes []Box  `json:"boxes"`
	Edges []Edge `json:"edges"`
}

// BoxFor returns the rectangle of frame f placed at p. The width fits the
// longer of the title and the longest slot line; the height grows with the
// slot count.
func BoxFor(f *frame.Frame, p frame.Position, m Measurer) Rect {
	return Rect{
		X: float64(p.X),
		Y: float64(p.Y),
		W: m.TextWidth(f.BoxLabel()) + Padding,
		H: BaseHeight + SlotHeight*float64(f.Len()),
	}
}

// Build lays out every frame of g and routes every reference slot.
// It is pure: the graph is only read.
func Build(g *frame.Graph, m Measurer) Diagram {
	placements := g.Frames()
	rects := make(map[frame.ID]Rect, len(placements))
	d := Diagram{Boxes: make([]Box, 0, len(placements))}

	for _, p := range placements {
		r := BoxFor(p.Frame, p.Position, m)
		rects[p.Frame.ID()] = r
		d.Boxes = append(d.Boxes, newBox(p.Frame, r))
	}

	for _, p := range placements {
		src := rects[p.Frame.ID()]
		for _, s := range p.Frame.Slots() {
			if s.Value.Kind() != frame.KindReference {
				continue
			}
			target, ok := g.Target(s.Value)
			if !ok {
				continue
			}
			e := Route(src, rects[target.ID()])
			e.From, e.To = p.Frame.Name(), target.Name()
			d.Edges = append(d.Edges, e)
		}
	}
	return d
}

func newBox(f *frame.Frame, r Rect) Box {
	b := Box{
		Frame: f.Name(),
		Rect:  r,
		Title: Text{X: r.CenterX(), Y: r.Y + titleBaseline, Value: f.DisplayLabel(), Centered: true},
		Separator: Line{
			From: Point{r.X + textInset, r.Y + separatorY},
			To:   Point{r.Right() - textInset, r.Y + separatorY},
		},
		Header: Text{X: r.X + textInset, Y: r.Y + headerBaseline, Value: SlotsHeader, Bold: true},
	}
	for i, s := range f.Slots() {
		b.Slots = append(b.Slots, Text{
			X:     r.X + textInset,
			Y:     r.Y + headerBaseline + SlotHeight*float64(i+1),
			Value: frame.FormatSlot(s),
		})
	}
	return b
}

// Bounds returns the smallest rectangle containing every box and edge.
// It is the zero Rect for an empty diagram.
func (d Diagram) Bounds() Rect {
	if len(d.Boxes) == 0 {
		return Rect{}
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		x0, y0 = min(x0, p.X), min(y0, p.Y)
		x1, y1 = max(x1, p.X), max(y1, p.Y)
	}
	for _, box := range d.Boxes {
		extend(box.Rect.Corner(TopLeft))
		extend(box.Rect.Corner(BottomRight))
	}
	for _, e := range d.Edges {
		extend(e.Start)
		for _, p := range e.Head {
			extend(p)
		}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
