package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/frame"
)

// ReadJSON decodes a JSON model from r.
//
// The input must be a JSON object with a "frames" array:
//
//	{
//	  "frames": [
//	    {"name": "Car", "x": 10, "y": 10, "slots": [
//	      {"name": "Color", "value": "Red"},
//	      {"ref": "Engine"}
//	    ]},
//	    {"name": "Engine", "x": 300, "y": 10}
//	  ]
//	}
//
// All frames are created before any slot, so references may point forward.
// A reference slot may repeat the target in "name"; a different name is
// rejected because reference slots are keyed by their target.
//
// ReadJSON returns an error if the JSON is malformed or if the model rejects
// a frame or slot (duplicate names, unknown targets, self references).
// Errors are wrapped with context describing which frame or slot caused the
// problem. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*frame.Graph, error) {
	var data model
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode")
	}

	g := frame.New()
	for _, f := range data.Frames {
		if _, err := g.AddFrame(f.Name, frame.Position{X: f.X, Y: f.Y}); err != nil {
			return nil, fmt.Errorf("frame %s: %w", f.Name, err)
		}
	}
	for _, f := range data.Frames {
		owner, err := g.At(f.Name)
		if err != nil {
			return nil, err
		}
		for _, s := range f.Slots {
			if err := addSlot(g, owner, s); err != nil {
				return nil, fmt.Errorf("frame %s slot %s: %w", f.Name, s.key(), err)
			}
		}
	}
	return g, nil
}

func addSlot(g *frame.Graph, owner *frame.Frame, s slot) error {
	if s.Ref == nil {
		if s.Value == nil {
			return owner.AddLiteral(s.Name, "")
		}
		return owner.AddLiteral(s.Name, *s.Value)
	}
	if s.Value != nil {
		return fgerrors.New(fgerrors.ErrCodeInvalidFormat, "slot has both value and ref")
	}
	if s.Name != "" && s.Name != *s.Ref {
		return fgerrors.New(fgerrors.ErrCodeInvalidFormat,
			"reference slot name %q differs from target %q", s.Name, *s.Ref)
	}
	target, err := g.At(*s.Ref)
	if err != nil {
		return err
	}
	return owner.AddReference(target)
}

// ImportJSON reads a JSON model file at path.
func ImportJSON(path string) (*frame.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Import reads a model file, choosing the codec by extension: ".json" is
// JSON, anything else the flat-text format.
func Import(path string) (*frame.Graph, error) {
	if isJSON(path) {
		return ImportJSON(path)
	}
	return ImportFM(path)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
