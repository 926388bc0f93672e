// Package io reads and writes frame models.
//
// # Overview
//
// Two formats are supported:
//
//   - The flat-text model format (".fm"), one record per line, shared with
//     older versions of the editor
//   - A JSON format with full fidelity, used for export and exchange
//
// [Import] and [Export] pick the codec from the file extension.
//
// # Flat-Text Format
//
// Records are space-delimited UTF-8 lines. All frame records come before
// all slot records:
//
//	Frame Car 10 10
//	Frame Engine 300 10
//	Slot Color Значение Red Целевой_Фрейм Car
//	Slot Engine Значение Фрейм-ссылка Целевой_Фрейм Car
//
// Spaces inside names and values are written as underscores. A reference
// slot stores the marker [ReferenceMarker] instead of a value; because a
// reference slot is keyed by its target's name, the reader recovers the
// target from the slot name.
//
// The format has known gaps, kept for compatibility with existing files:
//
//   - Underscores in names and values read back as spaces
//   - A literal whose value is exactly the reference marker reads back as a
//     reference, and the file is rejected if no frame has the slot's name
//
// [WriteFM] refuses models that hit either gap, so every model it writes
// reads back unchanged. Use the JSON format for such models.
//
// # JSON Format
//
//	{
//	  "frames": [
//	    {"name": "Car", "x": 10, "y": 10, "slots": [
//	      {"name": "Color", "value": "Red"},
//	      {"name": "Engine", "ref": "Engine"}
//	    ]},
//	    {"name": "Engine", "x": 300, "y": 10}
//	  ]
//	}
//
// Literal slots carry "value", reference slots carry "ref". Names and values
// round-trip exactly.
//
// # Errors
//
// Malformed input fails with an INVALID_FORMAT error; flat-text errors name
// the offending line. Model violations (duplicate frames, references to
// unknown frames) keep their own codes in the error chain.
package io
