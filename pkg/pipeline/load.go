package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/framegraph/pkg/frame"
	pkgio "github.com/matzehuels/framegraph/pkg/io"
	"github.com/matzehuels/framegraph/pkg/observability"
)

// Load parses model bytes into a frame graph. JSON models are recognized by
// a leading '{'; everything else is read as the flat-text format.
func Load(ctx context.Context, model []byte, source string) (*frame.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	var (
		g   *frame.Graph
		err error
	)
	if isJSON(model) {
		g, err = pkgio.ReadJSON(bytes.NewReader(model))
	} else {
		g, err = pkgio.ReadFM(bytes.NewReader(model))
	}

	frames := 0
	if err == nil {
		frames = g.Len()
	}
	hooks.OnLoadComplete(ctx, source, frames, time.Since(start), err)
	return g, err
}

func isJSON(model []byte) bool {
	trimmed := bytes.TrimLeft(model, " \t\r\n\ufeff")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// countReferences returns the number of reference slots across all frames,
// which equals the number of connectors in the diagram.
func countReferences(g *frame.Graph) int {
	n := 0
	for _, p := range g.Frames() {
		for _, s := range p.Frame.Slots() {
			if s.Value.IsReference() {
				n++
			}
		}
	}
	return n
}
