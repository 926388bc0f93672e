package frame

import (
	"slices"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
)

// Position is a frame's top-left corner in screen coordinates (y grows
// downward). It is a placement hint only.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement pairs a frame with its position, as returned by [Graph.Frames].
type Placement struct {
	Frame    *Frame
	Position Position
}

// Graph owns every frame of a model together with its position. It enforces
// unique frame names and keeps reference slots consistent across renames and
// erasures: every reference target exists, and every reference slot is keyed
// by its target's current name.
//
// Frames iterate in insertion order. Graph is not safe for concurrent use.
type Graph struct {
	byName map[string]*Frame
	byID   map[ID]*Frame
	pos    map[ID]Position
	order  []ID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byName: make(map[string]*Frame),
		byID:   make(map[ID]*Frame),
		pos:    make(map[ID]Position),
	}
}

// AddFrame creates a frame at p and returns its handle. The handle remains
// valid across renames until the frame is erased.
func (g *Graph) AddFrame(name string, p Position) (*Frame, error) {
	if err := fgerrors.ValidateName("frame", name); err != nil {
		return nil, err
	}
	if g.Contains(name) {
		return nil, fgerrors.New(fgerrors.ErrCodeDuplicateFrame, "frame %q already exists", name)
	}
	f := newFrame(g, name)
	g.byName[name] = f
	g.byID[f.id] = f
	g.pos[f.id] = p
	g.order = append(g.order, f.id)
	return f, nil
}

// RenameFrame renames a frame and re-keys every reference slot pointing at
// it. Literal slots that happen to share the old name are left alone.
//
// Every check runs before anything changes, so a failed rename leaves the
// graph untouched. Renaming a frame to its current name is a no-op.
func (g *Graph) RenameFrame(oldName, newName string) error {
	f, err := g.At(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if err := fgerrors.ValidateName("frame", newName); err != nil {
		return err
	}
	if g.Contains(newName) {
		return fgerrors.New(fgerrors.ErrCodeDuplicateFrame, "frame %q already exists", newName)
	}
	if f.Contains(newName) {
		return fgerrors.New(fgerrors.ErrCodeSelfReference,
			"frame %q contains a slot named %q", oldName, newName)
	}
	referrers := g.referrers(f.id)
	for _, r := range referrers {
		if r.Contains(newName) {
			return fgerrors.New(fgerrors.ErrCodeDuplicateSlot,
				"frame %q references %q and already contains slot %q", r.name, oldName, newName)
		}
	}

	for _, r := range referrers {
		r.rekey(oldName, newName)
	}
	delete(g.byName, oldName)
	f.setName(newName)
	g.byName[newName] = f
	return nil
}

// EraseFrame removes a frame and every reference slot pointing at it.
// Literal slots sharing its name survive. The erased handle is detached:
// later mutations through it fail with FRAME_NOT_FOUND.
func (g *Graph) EraseFrame(name string) error {
	f, err := g.At(name)
	if err != nil {
		return err
	}
	for _, r := range g.referrers(f.id) {
		r.remove(name)
	}
	delete(g.byName, name)
	delete(g.byID, f.id)
	delete(g.pos, f.id)
	g.order = slices.DeleteFunc(g.order, func(id ID) bool { return id == f.id })
	f.graph = nil
	return nil
}

// ReplacePosition moves a frame. A nil coordinate is left unchanged.
func (g *Graph) ReplacePosition(name string, x, y *int) error {
	f, err := g.At(name)
	if err != nil {
		return err
	}
	p := g.pos[f.id]
	if x != nil {
		p.X = *x
	}
	if y != nil {
		p.Y = *y
	}
	g.pos[f.id] = p
	return nil
}

// At returns the frame with the given name.
func (g *Graph) At(name string) (*Frame, error) {
	f, ok := g.byName[name]
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeFrameNotFound, "frame %q not found", name)
	}
	return f, nil
}

// Position returns the position of the named frame.
func (g *Graph) Position(name string) (Position, error) {
	f, err := g.At(name)
	if err != nil {
		return Position{}, err
	}
	return g.pos[f.id], nil
}

// ByID returns the live frame with the given ID.
func (g *Graph) ByID(id ID) (*Frame, bool) {
	f, ok := g.byID[id]
	return f, ok
}

// Target resolves a reference value to its frame. It returns false for
// literals.
func (g *Graph) Target(v SlotValue) (*Frame, bool) {
	if !v.IsReference() {
		return nil, false
	}
	return g.ByID(v.Target())
}

// Contains reports whether a frame with the given name exists.
func (g *Graph) Contains(name string) bool {
	_, ok := g.byName[name]
	return ok
}

// IsEmpty reports whether the graph has no frames.
func (g *Graph) IsEmpty() bool { return len(g.order) == 0 }

// Len returns the number of frames.
func (g *Graph) Len() int { return len(g.order) }

// Frames returns every frame with its position, in insertion order.
func (g *Graph) Frames() []Placement {
	out := make([]Placement, len(g.order))
	for i, id := range g.order {
		out[i] = Placement{Frame: g.byID[id], Position: g.pos[id]}
	}
	return out
}

// Names returns the frame names in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	for i, id := range g.order {
		out[i] = g.byID[id].name
	}
	return out
}

// referrers returns the other frames holding a reference slot to id.
func (g *Graph) referrers(id ID) []*Frame {
	var out []*Frame
	for _, fid := range g.order {
		f := g.byID[fid]
		if f.id == id {
			continue
		}
		for _, name := range f.order {
			if v := f.slots[name]; v.IsReference() && v.target == id {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
