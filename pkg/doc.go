// Package pkg provides the core libraries for framegraph, an editor for
// frame/slot knowledge models.
//
// # Overview
//
// A model is a set of named frames placed on a canvas. Each frame holds an
// ordered list of slots, and every slot is either a literal string or a
// reference to another frame of the same model. The pkg directory is
// organized into four areas:
//
//  1. [frame] - The frame graph and its consistency rules
//  2. [search], [layout], [render] - Queries and diagrams over a graph
//  3. [io] - Flat-text (.fm) and JSON persistence
//  4. [pipeline], [cache], [observability] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	.fm or .json file
//	       ↓
//	  [io] package (parse into a graph)
//	       ↓
//	  [frame] package (edit: frames, literals, references)
//	       ↓
//	  [layout] package (measure boxes, route connectors)
//	       ↓
//	  [render] packages (SVG, DOT, JSON, PNG, PDF)
//
// # Quick Start
//
// Build a model, search it and render it:
//
//	g := frame.New()
//	car, _ := g.AddFrame("Car", frame.Position{X: 10, Y: 10})
//	engine, _ := g.AddFrame("Engine", frame.Position{X: 300, Y: 10})
//	car.AddLiteral("Color", "Red")
//	car.AddReference(engine)
//
//	matches := search.Syntactic(g, []string{"Color"})
//
//	m, _ := layout.NewMeasurer(layout.MeasurerFont)
//	svg := diagram.RenderSVG(layout.Build(g, m))
//
// # Main Packages
//
// [frame] - Frames, slots and the graph that owns them. Renaming a frame
// re-keys every reference to it, erasing a frame removes every reference to
// it, and a slot never changes kind.
//
// [search] - Syntactic search (by slot name) and semantic search (by slot
// value), plus the plain-text reports the CLI prints.
//
// [layout] - Box geometry from measured slot text and quadrant-based
// connector routing with arrowheads.
//
// [render/diagram] - SVG, JSON, PNG and PDF output of a computed layout.
//
// [render/nodelink] - Graphviz DOT export and in-process Graphviz rendering.
//
// [io] - The whitespace-separated .fm format and the JSON format.
//
// [pipeline] - Load → layout → render with per-format artifact caching, used
// by both the render command and the HTTP viewer.
//
// [cache] - File, Redis and no-op cache backends behind one interface.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/frame/...    # Specific package
//	go test -run Example       # Examples only
//
// [frame]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/frame
// [search]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/search
// [layout]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/render
// [render/diagram]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/render/diagram
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/framegraph/pkg/errors
package pkg
