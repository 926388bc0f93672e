package search

import (
	"strings"
)

// SyntacticReport renders syntactic matches as plain text:
//
//	Syntactic search results for slots "Color, Size":
//	"Color" found in frame "Car" with value "Red"
//
// The header is always present, even without matches.
func SyntacticReport(names []string, matches []Match) string {
	var b strings.Builder
	b.WriteString(`Syntactic search results for slots "` + strings.Join(names, ", ") + "\":\n")
	for _, m := range matches {
		b.WriteString(`"` + m.Slot + `" found in frame "` + m.Frame + `" with value "` + m.Value + "\"\n")
	}
	return b.String()
}

// SemanticReport renders semantic matches as plain text, one indented line
// per slot under each frame:
//
//	Semantic search results for slot values "Red":
//	Found in frame "Car":
//	    — Slot "Color" with value "Red"
func SemanticReport(values []string, groups []FrameMatches) string {
	var b strings.Builder
	b.WriteString(`Semantic search results for slot values "` + strings.Join(values, ", ") + "\":\n")
	for _, g := range groups {
		b.WriteString(`Found in frame "` + g.Frame + "\":\n")
		for _, m := range g.Matches {
			b.WriteString(`    — Slot "` + m.Slot + `" with value "` + m.Value + "\"\n")
		}
	}
	return b.String()
}
