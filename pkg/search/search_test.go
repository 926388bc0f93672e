package search

import (
	"slices"
	"testing"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// fleet builds:
//
//	Car:    Color=Red, Engine -> Engine
//	Engine: Power=300
//	Garage: Car -> Car, Parked=Car
func fleet(t *testing.T) *frame.Graph {
	t.Helper()
	g := frame.New()
	car, _ := g.AddFrame("Car", frame.Position{})
	engine, _ := g.AddFrame("Engine", frame.Position{X: 300})
	garage, _ := g.AddFrame("Garage", frame.Position{Y: 300})
	for _, err := range []error{
		car.AddLiteral("Color", "Red"),
		car.AddReference(engine),
		engine.AddLiteral("Power", "300"),
		garage.AddReference(car),
		garage.AddLiteral("Parked", "Car"),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestSyntactic(t *testing.T) {
	g := fleet(t)
	tests := []struct {
		name  string
		names []string
		want  []Match
	}{
		{
			name:  "single literal",
			names: []string{"Color"},
			want:  []Match{{Frame: "Car", Slot: "Color", Value: "Red", Kind: frame.KindLiteral}},
		},
		{
			name:  "references",
			names: []string{frame.ReferenceLabel},
			want: []Match{
				{Frame: "Car", Slot: frame.ReferenceLabel, Value: "Engine", Kind: frame.KindReference},
				{Frame: "Garage", Slot: frame.ReferenceLabel, Value: "Car", Kind: frame.KindReference},
			},
		},
		{
			name:  "reference key is not a slot name",
			names: []string{"Engine"},
			want:  nil,
		},
		{
			name:  "mixed in frame order",
			names: []string{"Parked", "Power"},
			want: []Match{
				{Frame: "Engine", Slot: "Power", Value: "300", Kind: frame.KindLiteral},
				{Frame: "Garage", Slot: "Parked", Value: "Car", Kind: frame.KindLiteral},
			},
		},
		{
			name:  "no terms",
			names: nil,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Syntactic(g, tt.names); !slices.Equal(got, tt.want) {
				t.Errorf("Syntactic(%v) = %+v, want %+v", tt.names, got, tt.want)
			}
		})
	}
}

func TestSemantic(t *testing.T) {
	g := fleet(t)

	got := Semantic(g, []string{"Car"})
	if len(got) != 1 || got[0].Frame != "Garage" {
		t.Fatalf("Semantic(Car) = %+v, want one Garage group", got)
	}
	want := []Match{
		{Frame: "Garage", Slot: frame.ReferenceLabel, Value: "Car", Kind: frame.KindReference},
		{Frame: "Garage", Slot: "Parked", Value: "Car", Kind: frame.KindLiteral},
	}
	if !slices.Equal(got[0].Matches, want) {
		t.Errorf("matches = %+v, want %+v", got[0].Matches, want)
	}

	got = Semantic(g, []string{"Red", "300"})
	if len(got) != 2 || got[0].Frame != "Car" || got[1].Frame != "Engine" {
		t.Errorf("Semantic(Red, 300) = %+v", got)
	}

	if got := Semantic(g, []string{"Blue"}); got != nil {
		t.Errorf("Semantic(Blue) = %+v, want nil", got)
	}
}

func TestSemanticFollowsRename(t *testing.T) {
	g := fleet(t)
	if err := g.RenameFrame("Engine", "Motor"); err != nil {
		t.Fatal(err)
	}
	got := Semantic(g, []string{"Motor"})
	if len(got) != 1 || got[0].Matches[0].Value != "Motor" {
		t.Errorf("Semantic(Motor) = %+v", got)
	}
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"Color", []string{"Color"}},
		{"Color;Size", []string{"Color", "Size"}},
		{"Color;;Size;;", []string{"Color", "Size"}},
		{" Color; Size ", []string{" Color", " Size "}},
		{" ", []string{" "}},
		{"Frame reference", []string{"Frame reference"}},
		{"", nil},
		{";;", nil},
	}
	for _, tt := range tests {
		if got := ParseTerms(tt.query); !slices.Equal(got, tt.want) {
			t.Errorf("ParseTerms(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestSyntacticReport(t *testing.T) {
	g := fleet(t)
	names := []string{"Color", "Power"}
	got := SyntacticReport(names, Syntactic(g, names))
	want := `Syntactic search results for slots "Color, Power":
"Color" found in frame "Car" with value "Red"
"Power" found in frame "Engine" with value "300"
`
	if got != want {
		t.Errorf("SyntacticReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestSemanticReport(t *testing.T) {
	g := fleet(t)
	values := []string{"Car"}
	got := SemanticReport(values, Semantic(g, values))
	want := `Semantic search results for slot values "Car":
Found in frame "Garage":
    — Slot "Frame reference" with value "Car"
    — Slot "Parked" with value "Car"
`
	if got != want {
		t.Errorf("SemanticReport() =\n%s\nwant\n%s", got, want)
	}
}
