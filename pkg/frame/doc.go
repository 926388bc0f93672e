// Package frame provides the frame/slot knowledge model: named frames holding
// named slots whose values are literal strings or references to other frames.
//
// # Overview
//
// A [Graph] owns every [Frame] of a model together with its [Position] on the
// canvas. Frames own their slots. A slot value is a [SlotValue], a tagged
// variant that is either [Literal] text or a [Reference] to another frame of
// the same graph. Reference slots turn the model into a labeled directed
// graph, which the layout package draws as boxes joined by arrows.
//
// # Basic Usage
//
//	g := frame.New()
//	car, _ := g.AddFrame("Car", frame.Position{X: 10, Y: 10})
//	engine, _ := g.AddFrame("Engine", frame.Position{X: 300, Y: 10})
//	_ = car.AddLiteral("Color", "Red")
//	_ = car.AddReference(engine)
//
// # Reference Keys
//
// A reference slot is always keyed by the name of the frame it points at.
// [Graph.RenameFrame] re-keys every such slot and [Graph.EraseFrame] removes
// them, so there are never dangling references. Literal slots that happen to
// share a frame's name are never touched by either cascade.
//
// References hold the target's [ID], not a pointer, and are resolved with
// [Graph.Target]. IDs survive renames.
//
// # Derived Labels
//
// Each frame caches its [Frame.DisplayLabel] and [Frame.LongestSlotLabel].
// The display label changes only on rename. The longest slot label is updated
// incrementally when a slot is added and rescanned on every other slot
// change, including changes made by graph cascades.
//
// # Errors
//
// Every mutation validates before changing anything; a rejected call leaves
// the graph as it was. Errors carry codes from the errors package and match
// the sentinels in this package through errors.Is:
//
//	if errors.Is(err, frame.ErrDuplicateSlot) { ... }
//
// # Concurrency
//
// Graph and Frame are not safe for concurrent use. Callers that share a
// graph between goroutines must synchronize access.
package frame
