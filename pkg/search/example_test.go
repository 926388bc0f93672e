package search_test

import (
	"fmt"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/search"
)

func ExampleSyntactic() {
	g := frame.New()
	car, _ := g.AddFrame("Car", frame.Position{})
	boat, _ := g.AddFrame("Boat", frame.Position{})
	_ = car.AddLiteral("Color", "Red")
	_ = boat.AddLiteral("Hull", "Steel")

	for _, m := range search.Syntactic(g, search.ParseTerms("Color")) {
		fmt.Printf("%s/%s/%s\n", m.Frame, m.Slot, m.Value)
	}
	// Output:
	// Car/Color/Red
}

func ExampleSemantic() {
	g := frame.New()
	car, _ := g.AddFrame("Car", frame.Position{})
	driver, _ := g.AddFrame("Driver", frame.Position{})
	_ = driver.AddReference(car)
	_ = driver.AddLiteral("Drives", "Car")

	fmt.Print(search.SemanticReport([]string{"Car"}, search.Semantic(g, []string{"Car"})))
	// Output:
	// Semantic search results for slot values "Car":
	// Found in frame "Driver":
	//     — Slot "Frame reference" with value "Car"
	//     — Slot "Drives" with value "Car"
}
