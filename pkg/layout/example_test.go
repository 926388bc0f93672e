package layout_test

import (
	"fmt"

	"github.com/matzehuels/framegraph/pkg/layout"
)

func ExampleRoute() {
	src := layout.Rect{X: 0, Y: 0, W: 100, H: 100}

	// Target below and to the right: bottom-right to top-left
	e := layout.Route(src, layout.Rect{X: 150, Y: 150, W: 120, H: 95})
	fmt.Println(e.StartCorner, "->", e.EndCorner, e.Start, e.End)

	// Target above and to the right: top-right to the target's bottom-left
	e = layout.Route(src, layout.Rect{X: 150, Y: -150, W: 120, H: 95})
	fmt.Println(e.StartCorner, "->", e.EndCorner, e.Start, e.End)
	// Output:
	// bottom-right -> top-left {100 100} {150 150}
	// top-right -> bottom-left {100 0} {150 -55}
}
