package layout

// Point is a position in screen coordinates: x grows to the right and y
// grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Corner returns the point at corner c.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case TopRight:
		return Point{r.Right(), r.Y}
	case BottomLeft:
		return Point{r.X, r.Bottom()}
	case BottomRight:
		return Point{r.Right(), r.Bottom()}
	default:
		return Point{r.X, r.Y}
	}
}

// Corner names one of the four corners of a [Rect].
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns a kebab-case name for the corner.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// MarshalText encodes the corner as its String form.
func (c Corner) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
