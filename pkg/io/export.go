package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/framegraph/pkg/frame"
)

type model struct {
	Frames []frameRecord `json:"frames"`
}

type frameRecord struct {
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Slots []slot `json:"slots,omitempty"`
}

type slot struct {
	Name  string  `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
	Ref   *string `json:"ref,omitempty"`
}

func (s slot) key() string {
	if s.Ref != nil && s.Name == "" {
		return *s.Ref
	}
	return s.Name
}

// WriteJSON encodes g as JSON and writes it to w. Unlike the flat-text
// format, reference targets are stored explicitly.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *frame.Graph, w io.Writer) error {
	out := model{Frames: make([]frameRecord, 0, g.Len())}

	for _, p := range g.Frames() {
		fr := frameRecord{Name: p.Frame.Name(), X: p.Position.X, Y: p.Position.Y}
		for _, s := range p.Frame.Slots() {
			switch s.Value.Kind() {
			case frame.KindReference:
				target := s.Name
				if t, ok := g.Target(s.Value); ok {
					target = t.Name()
				}
				fr.Slots = append(fr.Slots, slot{Name: s.Name, Ref: &target})
			case frame.KindLiteral:
				text := s.Value.Text()
				fr.Slots = append(fr.Slots, slot{Name: s.Name, Value: &text})
			}
		}
		out.Frames = append(out.Frames, fr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *frame.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Export writes g to path, choosing the codec by extension like [Import].
func Export(g *frame.Graph, path string) error {
	if isJSON(path) {
		return ExportJSON(g, path)
	}
	return ExportFM(g, path)
}
