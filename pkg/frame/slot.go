package frame

import (
	"github.com/google/uuid"
)

// ID is the stable identity of a frame. It is assigned by [Graph.AddFrame]
// and survives renames, so handles and references never go stale when the
// user edits a name.
type ID string

func newID() ID { return ID(uuid.NewString()) }

// Kind distinguishes the two variants of a [SlotValue].
type Kind int

const (
	// KindLiteral is a slot holding a plain string.
	KindLiteral Kind = iota
	// KindReference is a slot pointing at another frame of the same graph.
	KindReference
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its String form.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const (
	// ReferenceLabel is the display name of a reference slot. Syntactic
	// search treats it as a pseudo slot name matching every reference.
	ReferenceLabel = "Frame reference"

	// DefaultValue replaces an empty literal value.
	DefaultValue = "Value"
)

// SlotValue is a tagged variant: either a literal string or a reference to
// another frame. Exactly one variant is active. Consumers switch on Kind.
//
// The zero value is an empty literal.
type SlotValue struct {
	kind   Kind
	text   string
	target ID
}

// Literal returns a literal slot value.
func Literal(text string) SlotValue {
	return SlotValue{kind: KindLiteral, text: text}
}

// Reference returns a value pointing at the frame with the given ID.
// The target is resolved through the owning [Graph], never held directly.
func Reference(target ID) SlotValue {
	return SlotValue{kind: KindReference, target: target}
}

// Kind reports which variant is active.
func (v SlotValue) Kind() Kind { return v.kind }

// IsReference reports whether the value points at another frame.
func (v SlotValue) IsReference() bool { return v.kind == KindReference }

// Text returns the literal text. It is empty for references.
func (v SlotValue) Text() string { return v.text }

// Target returns the referenced frame ID. It is empty for literals.
func (v SlotValue) Target() ID { return v.target }

// Slot is a named slot value as returned by [Frame.Slots].
type Slot struct {
	Name  string
	Value SlotValue
}

// FormatSlot renders a slot the way it appears inside a frame box and in
// search reports:
//
//	Color (Red)
//	Frame reference ("Car")
//
// Reference slots are keyed by their target's name, so the slot name is the
// target name.
func FormatSlot(s Slot) string {
	switch s.Value.Kind() {
	case KindReference:
		return ReferenceLabel + ` ("` + s.Name + `")`
	default:
		return s.Name + " (" + s.Value.Text() + ")"
	}
}
