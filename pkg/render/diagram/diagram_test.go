package diagram

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/framegraph/pkg/frame"
	"github.com/matzehuels/framegraph/pkg/layout"
)

func testDiagram(t *testing.T) layout.Diagram {
	t.Helper()
	g := frame.New()
	car, _ := g.AddFrame("Car", frame.Position{X: 0, Y: 0})
	engine, _ := g.AddFrame("Engine <V8>", frame.Position{X: 400, Y: 300})
	if err := car.AddLiteral("Color", "Red & Black"); err != nil {
		t.Fatal(err)
	}
	if err := car.AddReference(engine); err != nil {
		t.Fatal(err)
	}
	return layout.Build(g, layout.HeuristicMeasurer{Size: layout.FontSize})
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testDiagram(t)))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="-20.0 -20.0`,
		`class="frame-box" data-frame="Car"`,
		`fill: #d3dfac`,
		`Frame &#34;Car&#34;`,
		`Color (Red &amp; Black)`,
		`Engine &lt;V8&gt;`,
		`<text class="header"`,
		`<line class="edge" data-from="Car"`,
		`<polygon class="arrow"`,
		"</svg>\n",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if strings.Contains(svg, "@font-face") || strings.Contains(svg, "<script") {
		t.Error("RenderSVG() embedded optional content by default")
	}
	if got := strings.Count(svg, `<rect class="frame-box"`); got != 2 {
		t.Errorf("rect count = %d, want 2", got)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testDiagram(t),
		WithFill("#ffffff"),
		WithMargin(0),
		WithEmbeddedFont(),
		WithInteraction(),
	))

	for _, want := range []string{
		`fill: #ffffff`,
		`viewBox="0.0 0.0`,
		`@font-face`,
		`data:font/ttf;base64,`,
		`function highlight(name)`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(layout.Diagram{}))
	if !strings.Contains(svg, `viewBox="-20.0 -20.0 40.0 40.0"`) {
		t.Errorf("empty viewBox: %s", svg)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDiagram(t), WithJSONMeasurer("heuristic"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Measurer string `json:"measurer"`
		Boxes    []struct {
			Frame string `json:"frame"`
			Slots []struct {
				Value string `json:"value"`
			} `json:"slots"`
		} `json:"boxes"`
		Edges []struct {
			From        string `json:"from"`
			To          string `json:"to"`
			StartCorner string `json:"start_corner"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Measurer != "heuristic" {
		t.Errorf("Measurer = %q", out.Measurer)
	}
	if len(out.Boxes) != 2 || out.Boxes[0].Frame != "Car" || len(out.Boxes[0].Slots) != 2 {
		t.Errorf("Boxes = %+v", out.Boxes)
	}
	if len(out.Edges) != 1 || out.Edges[0].To != "Engine <V8>" || out.Edges[0].StartCorner != "bottom-right" {
		t.Errorf("Edges = %+v", out.Edges)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(layout.Diagram{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"boxes": []`) || !strings.Contains(string(data), `"edges": []`) {
		t.Errorf("RenderJSON(empty) = %s", data)
	}
}
