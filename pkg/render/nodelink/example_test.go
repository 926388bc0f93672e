package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := frame.New()
	driver, _ := g.AddFrame("Driver", frame.Position{})
	car, _ := g.AddFrame("Car", frame.Position{X: 300})
	_ = driver.AddReference(car)

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{}))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [shape=box, style=filled, fillcolor="#d3dfac", fontsize=16, margin="0.2,0.1"];
	//   edge [arrowsize=0.8];
	//
	//   "Driver" [label="Driver"];
	//   "Car" [label="Car"];
	//
	//   "Driver" -> "Car";
	// }
}
