package frame

import (
	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
)

// Sentinels for the model's validation failures. Each matches, through
// errors.Is, every error of the same code returned by this package.
var (
	// ErrDuplicateFrame is returned when a frame name is already taken, or
	// when a slot would be renamed to an existing frame's name.
	ErrDuplicateFrame error = fgerrors.Sentinel(fgerrors.ErrCodeDuplicateFrame)

	// ErrFrameNotFound is returned for unknown frame names and for handles
	// whose frame was erased.
	ErrFrameNotFound error = fgerrors.Sentinel(fgerrors.ErrCodeFrameNotFound)

	// ErrDuplicateSlot is returned when a frame already owns a slot name.
	ErrDuplicateSlot error = fgerrors.Sentinel(fgerrors.ErrCodeDuplicateSlot)

	// ErrSlotNotFound is returned when a frame has no slot of that name.
	ErrSlotNotFound error = fgerrors.Sentinel(fgerrors.ErrCodeSlotNotFound)

	// ErrSelfReference is returned when a slot would share its frame's name.
	ErrSelfReference error = fgerrors.Sentinel(fgerrors.ErrCodeSelfReference)

	// ErrTypeMismatch is returned when a literal-only edit targets a
	// reference slot.
	ErrTypeMismatch error = fgerrors.Sentinel(fgerrors.ErrCodeTypeMismatch)

	// ErrInvalidName is returned for empty or unrepresentable names.
	ErrInvalidName error = fgerrors.Sentinel(fgerrors.ErrCodeInvalidName)
)
