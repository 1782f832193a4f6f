// Package input translates physical key events into logical axes and buttons.
//
// An application chooses its own axis and button identifier types, usually
// small integer enumerations, and binds physical keys to them once at
// construction time:
//
//	im := input.NewManager[Axis, Button]().
//		BindKeyToAxis(keyUp, Vert, true).
//		BindKeyToAxis(keyDown, Vert, false).
//		BindKeyToButton(keyZ, Fire)
//
// The host forwards key notifications with OnKeyDown() and OnKeyUp() and
// advances time once per frame with Update(). Key events for a frame should
// be dispatched before Update() is called for that frame.
//
// # Axes
//
// Each axis has a position in the range -1 to +1 and a direction that the
// position is moving toward. A key bound to an axis sets the direction to +1
// or -1 when pressed and back to 0 when released. Update() moves the position
// toward the direction at the axis's acceleration rate (units per second) and,
// when the direction is zero, back toward zero at the gravity rate. The
// position never leaves the -1 to +1 range and never overshoots zero when
// falling back.
//
// Releasing a key bound to an axis always sets the direction to zero, even if
// another key for the same axis is still held.
//
// # Buttons
//
// A button is pressed while the last event for one of its keys was a key
// down. There is no press counting.
//
// # Unknown identifiers
//
// Reading an axis that has never been bound creates it with default tween
// parameters. Reading an unknown button returns false without creating
// anything.
//
// The Manager type is not safe for concurrent use. It is intended to be owned
// by the goroutine running the application's frame loop.
package input
