package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/frame"
)

// Markers of the flat-text model format.
const (
	FrameTag        = "Frame"
	SlotTag         = "Slot"
	ValueField      = "Значение"
	OwnerField      = "Целевой_Фрейм"
	ReferenceMarker = "Фрейм-ссылка"
)

// Record tags written by older versions of the editor. They are accepted on
// read and never written.
var legacyTags = map[string]string{
	"Фрейм": FrameTag,
	"Слот":  SlotTag,
}

// ReadFM decodes a flat-text model from r.
//
// Each non-empty line is one record:
//
//	Frame <Name> <x> <y>
//	Slot <SlotName> Значение <Value> Целевой_Фрейм <OwningFrame>
//
// Underscores in names and values are read back as spaces. A value equal to
// [ReferenceMarker] makes the slot a reference to the frame named by the
// slot; that frame must already have been read.
//
// Errors carry the INVALID_FORMAT code and the offending line number, or the
// model error that rejected the record.
func ReadFM(r io.Reader) (*frame.Graph, error) {
	g := frame.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := readRecord(g, strings.Split(text, " ")); err != nil {
			return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return g, nil
}

func readRecord(g *frame.Graph, fields []string) error {
	tag := fields[0]
	if t, ok := legacyTags[tag]; ok {
		tag = t
	}

	switch tag {
	case FrameTag:
		if len(fields) != 4 {
			return fmt.Errorf("frame record needs 4 fields, got %d", len(fields))
		}
		x, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("frame x: %w", err)
		}
		y, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("frame y: %w", err)
		}
		_, err = g.AddFrame(unescape(fields[1]), frame.Position{X: x, Y: y})
		return err

	case SlotTag:
		if len(fields) != 6 || fields[2] != ValueField || fields[4] != OwnerField {
			return fmt.Errorf("malformed slot record")
		}
		owner, err := g.At(unescape(fields[5]))
		if err != nil {
			return err
		}
		name := unescape(fields[1])
		if fields[3] == ReferenceMarker {
			target, err := g.At(name)
			if err != nil {
				return err
			}
			return owner.AddReference(target)
		}
		return owner.AddLiteral(name, unescape(fields[3]))

	default:
		return fmt.Errorf("unknown record %q", fields[0])
	}
}

// WriteFM encodes g as a flat-text model. All frame records come first, then
// all slot records, both in insertion order. Spaces are written as
// underscores.
//
// Models the format cannot read back unchanged are rejected with
// INVALID_INPUT before anything is written: names or values containing an
// underscore, and literals whose value is [ReferenceMarker].
func WriteFM(g *frame.Graph, w io.Writer) error {
	placements := g.Frames()
	if err := checkFM(placements); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	for _, p := range placements {
		fmt.Fprintf(bw, "%s %s %d %d\n", FrameTag, escape(p.Frame.Name()), p.Position.X, p.Position.Y)
	}
	for _, p := range placements {
		owner := escape(p.Frame.Name())
		for _, s := range p.Frame.Slots() {
			value := ReferenceMarker
			if s.Value.Kind() == frame.KindLiteral {
				value = escape(s.Value.Text())
			}
			fmt.Fprintf(bw, "%s %s %s %s %s %s\n", SlotTag, escape(s.Name), ValueField, value, OwnerField, owner)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func checkFM(placements []frame.Placement) error {
	for _, p := range placements {
		name := p.Frame.Name()
		if strings.Contains(name, "_") {
			return fgerrors.New(fgerrors.ErrCodeInvalidInput,
				"frame name %q contains an underscore, which flat-text models read back as a space", name)
		}
		for _, s := range p.Frame.Slots() {
			if strings.Contains(s.Name, "_") {
				return fgerrors.New(fgerrors.ErrCodeInvalidInput,
					"slot name %q of frame %q contains an underscore, which flat-text models read back as a space", s.Name, name)
			}
			if s.Value.Kind() != frame.KindLiteral {
				continue
			}
			switch v := s.Value.Text(); {
			case v == ReferenceMarker:
				return fgerrors.New(fgerrors.ErrCodeInvalidInput,
					"slot %q of frame %q: value %q is reserved for frame references in flat-text models", s.Name, name, v)
			case strings.Contains(v, "_"):
				return fgerrors.New(fgerrors.ErrCodeInvalidInput,
					"slot %q of frame %q: value %q contains an underscore, which flat-text models read back as a space", s.Name, name, v)
			}
		}
	}
	return nil
}

// ImportFM reads a flat-text model file.
func ImportFM(path string) (*frame.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFM(f)
}

// ExportFM writes g to a flat-text model file, replacing it.
func ExportFM(g *frame.Graph, path string) error {
	if err := checkFM(g.Frames()); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteFM(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func escape(s string) string   { return strings.ReplaceAll(s, " ", "_") }
func unescape(s string) string { return strings.ReplaceAll(s, "_", " ") }
