package layout

import "math"

// ArrowSize is the side length of an arrowhead.
const ArrowSize = 10.0

// Edge is a connector between two frame boxes. The line runs from Start to
// End; Head is the filled arrowhead triangle with its tip at End.
type Edge struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Start       Point    `json:"start"`
	End         Point    `json:"end"`
	StartCorner Corner   `json:"start_corner"`
	EndCorner   Corner   `json:"end_corner"`
	Head        [3]Point `json:"head"`
}

// Route picks the corners joining src to dst and returns the straight
// connector between them.
//
// The target is in the right half when its left edge is at or beyond the
// source's horizontal center. It is below when its top edge is under the
// source's bottom edge; in the left half it must also reach the source's
// left edge horizontally. Then:
//
//	right, below:      src bottom-right -> dst top-left
//	right, otherwise:  src top-right    -> dst bottom-left
//	left, below:       src bottom-left  -> dst top-right
//	left, otherwise:   src top-left     -> dst bottom-right
//
// Route does not avoid other boxes. From and To are left empty.
func Route(src, dst Rect) Edge {
	right := dst.X >= src.CenterX()
	below := dst.Y > src.Bottom()
	if !right {
		below = below && dst.Right() >= src.X
	}

	var from, to Corner
	switch {
	case right && below:
		from, to = BottomRight, TopLeft
	case right:
		from, to = TopRight, BottomLeft
	case below:
		from, to = BottomLeft, TopRight
	default:
		from, to = TopLeft, BottomRight
	}

	start, end := src.Corner(from), dst.Corner(to)
	p1, p2 := Arrowhead(start, end, ArrowSize)
	return Edge{
		Start:       start,
		End:         end,
		StartCorner: from,
		EndCorner:   to,
		Head:        [3]Point{end, p1, p2},
	}
}

// Arrowhead returns the two base vertices of a triangle whose tip is at end
// and which points along the line from start to end. The vertices lie size
// away from the tip at ±60° to the line.
func Arrowhead(start, end Point, size float64) (Point, Point) {
	dx, dy := start.X-end.X, start.Y-end.Y
	angle := math.Atan2(-dy, dx)
	p1 := Point{
		X: end.X + math.Sin(angle+math.Pi/3)*size,
		Y: end.Y + math.Cos(angle+math.Pi/3)*size,
	}
	p2 := Point{
		X: end.X + math.Sin(angle+math.Pi-math.Pi/3)*size,
		Y: end.Y + math.Cos(angle+math.Pi-math.Pi/3)*size,
	}
	return p1, p2
}
