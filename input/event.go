package input

import "fmt"

// Keycode is a platform key identifier. The value is opaque to the package
// and only compared for equality.
type Keycode int

// NoKey is used by event sources that report a key event for an absent or
// unrecognised key. Events for NoKey are ignored.
const NoKey Keycode = -1

type eventKind int

const (
	keyEvent eventKind = iota
)

// Event identifies a source of physical input. Events are comparable and are
// used as the key of the binding table.
type Event struct {
	kind eventKind
	key  Keycode
}

// KeyEvent returns the Event for a key on the keyboard.
func KeyEvent(kc Keycode) Event {
	return Event{kind: keyEvent, key: kc}
}

// Keycode returns the key for a key event.
func (ev Event) Keycode() Keycode {
	return ev.key
}

func (ev Event) String() string {
	switch ev.kind {
	case keyEvent:
		return fmt.Sprintf("key %d", ev.key)
	}
	return "unknown event"
}

// EffectKind distinguishes the two types of Effect.
type EffectKind int

// List of valid EffectKind values.
const (
	EffectAxis EffectKind = iota
	EffectButton
)

// Effect is the logical outcome of a physical Event. For EffectAxis the Axis
// and Positive fields are used. For EffectButton the Button field is used.
type Effect[A, B comparable] struct {
	Kind EffectKind

	Axis A

	// whether the event pushes the axis toward +1 (true) or -1 (false)
	Positive bool

	Button B
}

func (e Effect[A, B]) String() string {
	switch e.Kind {
	case EffectAxis:
		if e.Positive {
			return fmt.Sprintf("axis %v+", e.Axis)
		}
		return fmt.Sprintf("axis %v-", e.Axis)
	case EffectButton:
		return fmt.Sprintf("button %v", e.Button)
	}
	return "unknown effect"
}

// Binding is a single entry in the binding table.
type Binding[A, B comparable] struct {
	Event  Event
	Effect Effect[A, B]
}

func (b Binding[A, B]) String() string {
	return fmt.Sprintf("%s -> %s", b.Event, b.Effect)
}
