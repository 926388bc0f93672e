package frame

import (
	"slices"
	"unicode/utf8"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
)

// Frame is a named node owning a set of slots. Frames are created by
// [Graph.AddFrame] and stay attached to that graph until erased.
//
// Frame maintains two derived strings: the display label, rebuilt on rename,
// and the longest formatted slot text, maintained on every slot mutation.
// Slots iterate in insertion order; a renamed slot keeps its place.
//
// The zero value is not usable. Frame is not safe for concurrent use.
type Frame struct {
	id      ID
	name    string
	label   string
	slots   map[string]SlotValue
	order   []string
	longest string
	graph   *Graph
}

func newFrame(g *Graph, name string) *Frame {
	f := &Frame{
		id:    newID(),
		slots: make(map[string]SlotValue),
		graph: g,
	}
	f.setName(name)
	return f
}

// ID returns the frame's stable identity.
func (f *Frame) ID() ID { return f.id }

// Name returns the frame's current name.
func (f *Frame) Name() string { return f.name }

// DisplayLabel returns the box title, e.g. `Frame "Car"`.
func (f *Frame) DisplayLabel() string { return f.label }

// LongestSlotLabel returns the longest formatted slot text, or "" when the
// frame has no slots. Length is measured in runes.
func (f *Frame) LongestSlotLabel() string { return f.longest }

// BoxLabel returns whichever of LongestSlotLabel and DisplayLabel is longer.
// It decides the width of the frame's box so that the title always fits.
func (f *Frame) BoxLabel() string {
	if textLen(f.longest) < textLen(f.label) {
		return f.label
	}
	return f.longest
}

// Len returns the number of slots.
func (f *Frame) Len() int { return len(f.order) }

// Contains reports whether the frame owns a slot with the given name.
func (f *Frame) Contains(slotName string) bool {
	_, ok := f.slots[slotName]
	return ok
}

// Slot returns the value of the named slot.
func (f *Frame) Slot(slotName string) (SlotValue, bool) {
	v, ok := f.slots[slotName]
	return v, ok
}

// Slots returns a copy of the frame's slots in insertion order.
func (f *Frame) Slots() []Slot {
	out := make([]Slot, len(f.order))
	for i, name := range f.order {
		out[i] = Slot{Name: name, Value: f.slots[name]}
	}
	return out
}

// FormattedSlotText returns [FormatSlot] for the named slot.
func (f *Frame) FormattedSlotText(slotName string) (string, error) {
	v, ok := f.slots[slotName]
	if !ok {
		return "", f.slotNotFound(slotName)
	}
	return FormatSlot(Slot{Name: slotName, Value: v}), nil
}

// AddLiteral adds a literal slot. An empty value stores [DefaultValue].
//
// Returns an INVALID_NAME error for unusable names, SELF_REFERENCE when the
// slot would share the frame's name and DUPLICATE_SLOT when the name is taken.
func (f *Frame) AddLiteral(slotName, value string) error {
	if err := f.attached(); err != nil {
		return err
	}
	if err := fgerrors.ValidateName("slot", slotName); err != nil {
		return err
	}
	if err := fgerrors.ValidateValue(value); err != nil {
		return err
	}
	if err := f.checkNewSlotName(slotName); err != nil {
		return err
	}
	if value == "" {
		value = DefaultValue
	}
	f.insert(slotName, Literal(value))
	return nil
}

// AddReference adds a slot pointing at target. The slot is keyed by the
// target's name; rename and erase of the target keep it consistent.
//
// Returns FRAME_NOT_FOUND when target is not a live frame of the same graph,
// SELF_REFERENCE when target is f and DUPLICATE_SLOT when a slot with the
// target's name exists.
func (f *Frame) AddReference(target *Frame) error {
	if err := f.attached(); err != nil {
		return err
	}
	if target == nil || target.graph != f.graph {
		return fgerrors.New(fgerrors.ErrCodeFrameNotFound, "reference target is not a frame of this graph")
	}
	if err := target.attached(); err != nil {
		return err
	}
	if err := f.checkNewSlotName(target.name); err != nil {
		return err
	}
	f.insert(target.name, Reference(target.id))
	return nil
}

// ReplaceSlotName renames a literal slot in place, keeping its value and
// position.
//
// Reference slots are keyed by their target and cannot be renamed directly
// (TYPE_MISMATCH). The new name must not be the frame's own name
// (SELF_REFERENCE) or another slot (DUPLICATE_SLOT). Like [Frame.AddLiteral],
// it may name another frame.
func (f *Frame) ReplaceSlotName(oldName, newName string) error {
	if err := f.attached(); err != nil {
		return err
	}
	v, ok := f.slots[oldName]
	if !ok {
		return f.slotNotFound(oldName)
	}
	if v.IsReference() {
		return fgerrors.New(fgerrors.ErrCodeTypeMismatch,
			"slot %q of frame %q is a frame reference and follows its target's name", oldName, f.name)
	}
	if oldName == newName {
		return nil
	}
	if err := fgerrors.ValidateName("slot", newName); err != nil {
		return err
	}
	if err := f.checkNewSlotName(newName); err != nil {
		return err
	}
	f.rekey(oldName, newName)
	return nil
}

// ReplaceSlotValue replaces the text of a literal slot. An empty value
// stores [DefaultValue]. Reference slots are rejected with TYPE_MISMATCH;
// a slot never changes kind.
func (f *Frame) ReplaceSlotValue(slotName, value string) error {
	if err := f.attached(); err != nil {
		return err
	}
	v, ok := f.slots[slotName]
	if !ok {
		return f.slotNotFound(slotName)
	}
	if v.IsReference() {
		return fgerrors.New(fgerrors.ErrCodeTypeMismatch,
			"slot %q of frame %q is a frame reference, not a literal", slotName, f.name)
	}
	if err := fgerrors.ValidateValue(value); err != nil {
		return err
	}
	if value == "" {
		value = DefaultValue
	}
	f.slots[slotName] = Literal(value)
	f.recalculate()
	return nil
}

// EraseSlot removes a slot of either kind. Returns SLOT_NOT_FOUND if absent.
func (f *Frame) EraseSlot(slotName string) error {
	if err := f.attached(); err != nil {
		return err
	}
	if _, ok := f.slots[slotName]; !ok {
		return f.slotNotFound(slotName)
	}
	f.remove(slotName)
	return nil
}

// =============================================================================
// Internal bookkeeping
// =============================================================================

func (f *Frame) attached() error {
	if f.graph == nil {
		return fgerrors.New(fgerrors.ErrCodeFrameNotFound, "frame %q was erased", f.name)
	}
	return nil
}

func (f *Frame) checkNewSlotName(slotName string) error {
	if slotName == f.name {
		return fgerrors.New(fgerrors.ErrCodeSelfReference,
			"frame %q cannot contain a slot with its own name", f.name)
	}
	if f.Contains(slotName) {
		return fgerrors.New(fgerrors.ErrCodeDuplicateSlot,
			"frame %q already contains slot %q", f.name, slotName)
	}
	return nil
}

func (f *Frame) slotNotFound(slotName string) error {
	return fgerrors.New(fgerrors.ErrCodeSlotNotFound, "frame %q has no slot %q", f.name, slotName)
}

func (f *Frame) setName(name string) {
	f.name = name
	f.label = `Frame "` + name + `"`
}

// insert adds a slot and updates the longest label incrementally: adding
// can only grow the maximum.
func (f *Frame) insert(slotName string, v SlotValue) {
	f.slots[slotName] = v
	f.order = append(f.order, slotName)
	if text := FormatSlot(Slot{Name: slotName, Value: v}); textLen(text) > textLen(f.longest) {
		f.longest = text
	}
}

// rekey renames a slot in place. The formatted text changes with the key,
// so the longest label is rebuilt.
func (f *Frame) rekey(oldName, newName string) {
	v := f.slots[oldName]
	delete(f.slots, oldName)
	f.slots[newName] = v
	f.order[slices.Index(f.order, oldName)] = newName
	f.recalculate()
}

func (f *Frame) remove(slotName string) {
	delete(f.slots, slotName)
	f.order = slices.DeleteFunc(f.order, func(s string) bool { return s == slotName })
	f.recalculate()
}

// recalculate rescans every slot. On ties the earliest slot wins.
func (f *Frame) recalculate() {
	f.longest = ""
	for _, name := range f.order {
		if text := FormatSlot(Slot{Name: name, Value: f.slots[name]}); textLen(text) > textLen(f.longest) {
			f.longest = text
		}
	}
}

func textLen(s string) int { return utf8.RuneCountInString(s) }
