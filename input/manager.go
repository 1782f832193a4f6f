package input

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/jetsetilly/axial/logger"
)

// Manager maintains the logical input state for an application. The type
// parameters are the application's axis and button identifier types.
type Manager[A, B comparable] struct {
	// binding of physical events to logical effects. the last binding for an
	// event replaces any earlier binding
	bindings *orderedmap.OrderedMap[Event, Effect[A, B]]

	// state of every known axis and button. iteration order is the order in
	// which each entry was first created
	axes    *orderedmap.OrderedMap[A, *axisStatus]
	buttons *orderedmap.OrderedMap[B, bool]

	// logging is disabled unless a permission is supplied with WithLogging()
	perm logger.Permission
}

// NewManager returns an empty Manager with no bindings.
func NewManager[A, B comparable]() *Manager[A, B] {
	return &Manager[A, B]{
		bindings: orderedmap.NewOrderedMap[Event, Effect[A, B]](),
		axes:     orderedmap.NewOrderedMap[A, *axisStatus](),
		buttons:  orderedmap.NewOrderedMap[B, bool](),
	}
}

// WithLogging sets the permission used when logging from the manager.
func (m *Manager[A, B]) WithLogging(perm logger.Permission) *Manager[A, B] {
	m.perm = perm
	return m
}

// axis returns the state for the axis, creating it with default tween
// parameters if necessary
func (m *Manager[A, B]) axis(axis A) *axisStatus {
	if ax, ok := m.axes.Get(axis); ok {
		return ax
	}
	ax := newAxisStatus()
	m.axes.Set(axis, ax)
	return ax
}

// BindKeyToAxis binds the key to the axis. When the key is pressed the axis
// will move toward +1 if positive is true and toward -1 if it is false.
//
// Any existing binding for the key is replaced. The axis is created with
// default tween parameters if it does not already exist.
func (m *Manager[A, B]) BindKeyToAxis(kc Keycode, axis A, positive bool) *Manager[A, B] {
	m.bindings.Set(KeyEvent(kc), Effect[A, B]{
		Kind:     EffectAxis,
		Axis:     axis,
		Positive: positive,
	})
	m.axis(axis)
	return m
}

// BindKeyToButton binds the key to the button. Any existing binding for the
// key is replaced. The button is created in the released state if it does not
// already exist.
func (m *Manager[A, B]) BindKeyToButton(kc Keycode, button B) *Manager[A, B] {
	m.bindings.Set(KeyEvent(kc), Effect[A, B]{
		Kind:   EffectButton,
		Button: button,
	})
	if _, ok := m.buttons.Get(button); !ok {
		m.buttons.Set(button, false)
	}
	return m
}

// WithAxisTween sets the acceleration and gravity of the axis, in units per
// second. A value that is not greater than zero leaves the corresponding
// parameter unchanged. The axis is created if it does not already exist.
func (m *Manager[A, B]) WithAxisTween(axis A, acceleration float64, gravity float64) *Manager[A, B] {
	ax := m.axis(axis)
	if acceleration > 0 {
		ax.acceleration = acceleration
	}
	if gravity > 0 {
		ax.gravity = gravity
	}
	return m
}

// Update advances every axis by dt seconds. It should be called once per
// frame, after the key events for the frame have been dispatched.
//
// The dt value must not be negative. This is not checked.
func (m *Manager[A, B]) Update(dt float64) {
	for el := m.axes.Front(); el != nil; el = el.Next() {
		el.Value.step(dt)
	}
}

// OnKeyDown should be called by the host application's key-down handler.
// Keys that have no binding are ignored, as is NoKey.
func (m *Manager[A, B]) OnKeyDown(kc Keycode) {
	m.dispatch(kc, true)
}

// OnKeyUp should be called by the host application's key-up handler. Keys
// that have no binding are ignored, as is NoKey.
func (m *Manager[A, B]) OnKeyUp(kc Keycode) {
	m.dispatch(kc, false)
}

func (m *Manager[A, B]) dispatch(kc Keycode, pressed bool) {
	if kc == NoKey {
		return
	}
	e, ok := m.bindings.Get(KeyEvent(kc))
	if !ok {
		return
	}
	m.apply(e, pressed)
}

func (m *Manager[A, B]) apply(e Effect[A, B], pressed bool) {
	switch e.Kind {
	case EffectAxis:
		ax := m.axis(e.Axis)
		if pressed {
			if e.Positive {
				ax.direction = 1
			} else {
				ax.direction = -1
			}
		} else {
			// releasing any key for the axis stops it, regardless of which
			// direction the key was bound to
			ax.direction = 0
		}
	case EffectButton:
		m.buttons.Set(e.Button, pressed)
	}
}

// Axis returns the tweened position of the axis, in the range -1 to +1.
// An unknown axis is created with default parameters.
func (m *Manager[A, B]) Axis(axis A) float64 {
	return m.axis(axis).position
}

// AxisRaw returns the direction the axis is moving toward. For key bindings
// this is -1, 0 or +1. An unknown axis is created with default parameters.
func (m *Manager[A, B]) AxisRaw(axis A) float64 {
	return m.axis(axis).direction
}

// Button returns true if the button is pressed. An unknown button is not
// pressed. Unlike Axis(), reading an unknown button does not create it.
func (m *Manager[A, B]) Button(button B) bool {
	pressed, _ := m.buttons.Get(button)
	return pressed
}

// ButtonDown is the same as Button().
func (m *Manager[A, B]) ButtonDown(button B) bool {
	return m.Button(button)
}

// ButtonUp returns true if the button is not pressed.
func (m *Manager[A, B]) ButtonUp(button B) bool {
	return !m.Button(button)
}

// ResetAxes returns every axis to rest. The position and direction are set to
// zero even if a key for the axis is still held. The axis will not move
// again until a new key event for it is dispatched.
func (m *Manager[A, B]) ResetAxes() {
	for el := m.axes.Front(); el != nil; el = el.Next() {
		el.Value.reset()
	}
	logger.Logf(m.perm, "input", "reset %d axes", m.axes.Len())
}

// Axes returns the known axes in the order they were first created.
func (m *Manager[A, B]) Axes() []A {
	return m.axes.Keys()
}

// Buttons returns the known buttons in the order they were first created.
func (m *Manager[A, B]) Buttons() []B {
	return m.buttons.Keys()
}

// Bindings returns the binding table in the order events were first bound.
func (m *Manager[A, B]) Bindings() []Binding[A, B] {
	b := make([]Binding[A, B], 0, m.bindings.Len())
	for el := m.bindings.Front(); el != nil; el = el.Next() {
		b = append(b, Binding[A, B]{Event: el.Key, Effect: el.Value})
	}
	return b
}
