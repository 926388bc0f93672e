package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/layout"
	"github.com/matzehuels/framegraph/pkg/observability"
)

// BuildDiagram measures every frame box and routes every reference
// connector using the measurer named in opts.
func BuildDiagram(ctx context.Context, g *frame.Graph, opts Options) (layout.Diagram, error) {
	start := time.Now()

	m, err := layout.NewMeasurer(opts.Measurer)
	if err != nil {
		return layout.Diagram{}, err
	}
	if c, ok := m.(io.Closer); ok {
		defer c.Close()
	}

	d := layout.Build(g, m)
	observability.Pipeline().OnLayoutComplete(ctx, len(d.Boxes), len(d.Edges), time.Since(start))
	return d, nil
}
