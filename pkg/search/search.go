package search

import (
	"slices"
	"strings"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// Match is a single slot matched by a search.
//
// For a literal slot, Slot and Value are the slot's name and text. A
// reference slot is reported under [frame.ReferenceLabel] with the target's
// name as Value.
type Match struct {
	Frame string     `json:"frame"`
	Slot  string     `json:"slot"`
	Value string     `json:"value"`
	Kind  frame.Kind `json:"kind"`
}

// FrameMatches groups the semantic matches found in one frame.
type FrameMatches struct {
	Frame   string  `json:"frame"`
	Matches []Match `json:"matches"`
}

// Syntactic finds slots by name. A literal slot matches when its name is one
// of names. A reference slot matches when names contains
// [frame.ReferenceLabel]; each reference is then reported under that label
// with the target's name as value.
//
// Results follow frame insertion order, then slot insertion order.
func Syntactic(g *frame.Graph, names []string) []Match {
	wantRefs := slices.Contains(names, frame.ReferenceLabel)

	var out []Match
	for _, p := range g.Frames() {
		f := p.Frame
		for _, s := range f.Slots() {
			switch s.Value.Kind() {
			case frame.KindReference:
				if !wantRefs {
					continue
				}
				out = append(out, Match{
					Frame: f.Name(),
					Slot:  frame.ReferenceLabel,
					Value: targetName(g, s),
					Kind:  frame.KindReference,
				})
			case frame.KindLiteral:
				if !slices.Contains(names, s.Name) {
					continue
				}
				out = append(out, Match{
					Frame: f.Name(),
					Slot:  s.Name,
					Value: s.Value.Text(),
					Kind:  frame.KindLiteral,
				})
			}
		}
	}
	return out
}

// Semantic finds slots by value. A literal matches when its text is one of
// values; a reference matches when its target's name is. Only frames with at
// least one match produce a group.
func Semantic(g *frame.Graph, values []string) []FrameMatches {
	var out []FrameMatches
	for _, p := range g.Frames() {
		f := p.Frame
		var matches []Match
		for _, s := range f.Slots() {
			m := Match{Frame: f.Name(), Kind: s.Value.Kind()}
			switch s.Value.Kind() {
			case frame.KindReference:
				m.Slot, m.Value = frame.ReferenceLabel, targetName(g, s)
			case frame.KindLiteral:
				m.Slot, m.Value = s.Name, s.Value.Text()
			}
			if slices.Contains(values, m.Value) {
				matches = append(matches, m)
			}
		}
		if len(matches) > 0 {
			out = append(out, FrameMatches{Frame: f.Name(), Matches: matches})
		}
	}
	return out
}

// ParseTerms splits a semicolon-separated query into terms. Empty terms are
// dropped; whitespace is kept, since names and values may start or end with
// spaces:
//
//	ParseTerms("Color;Size;;")  // ["Color", "Size"]
//	ParseTerms("Color; Size")   // ["Color", " Size"]
func ParseTerms(query string) []string {
	var terms []string
	for _, part := range strings.Split(query, ";") {
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// targetName resolves a reference slot's target. The graph keeps reference
// keys equal to target names, so the key is the fallback.
func targetName(g *frame.Graph, s frame.Slot) string {
	if t, ok := g.Target(s.Value); ok {
		return t.Name()
	}
	return s.Name
}
