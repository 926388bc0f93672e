package diagram

import (
	"encoding/json"

	"github.com/matzehuels/framegraph/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	measurer string
}

// WithJSONMeasurer records the name of the measurer used for box widths.
func WithJSONMeasurer(name string) JSONOption {
	return func(r *jsonRenderer) { r.measurer = name }
}

type jsonOutput struct {
	Bounds   layout.Rect   `json:"bounds"`
	Measurer string        `json:"measurer,omitempty"`
	Boxes    []layout.Box  `json:"boxes"`
	Edges    []layout.Edge `json:"edges"`
}

// RenderJSON exports the diagram primitives for external tools.
func RenderJSON(d layout.Diagram, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{
		Bounds:   d.Bounds(),
		Measurer: r.measurer,
		Boxes:    d.Boxes,
		Edges:    d.Edges,
	}
	if out.Boxes == nil {
		out.Boxes = []layout.Box{}
	}
	if out.Edges == nil {
		out.Edges = []layout.Edge{}
	}
	return json.MarshalIndent(out, "", "  ")
}
