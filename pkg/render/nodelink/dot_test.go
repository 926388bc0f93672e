package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/framegraph/pkg/frame"
)

func testGraph(t *testing.T) *frame.Graph {
	t.Helper()
	g := frame.New()
	car, _ := g.AddFrame("Car", frame.Position{X: 10, Y: 20})
	engine, _ := g.AddFrame("Engine", frame.Position{X: 300, Y: 40})
	if err := car.AddLiteral("Color", "Red"); err != nil {
		t.Fatal(err)
	}
	if err := car.AddReference(engine); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=LR",
		`"Car" [label="Car"]`,
		`"Engine" [label="Engine"]`,
		`"Car" -> "Engine"`,
		`fillcolor="#d3dfac"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "Color (Red)") {
		t.Error("ToDOT() non-detailed output lists slots")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Detailed: true})

	if !strings.Contains(dot, `label="Frame \"Car\"\nColor (Red)\nFrame reference (\"Engine\")"`) {
		t.Errorf("ToDOT() detailed label wrong:\n%s", dot)
	}
}

func TestToDOT_Pinned(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Pinned: true, Fill: "white"})

	for _, want := range []string{"layout=neato", `pos="10,-20!"`, `pos="300,-40!"`, `fillcolor="white"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() pinned output missing %q", want)
		}
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT(frame.New(), Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(empty) = %q", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.25" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.25" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed svg without viewBox")
	}
}
