// Package console owns the logical input state of the application. It
// receives key events from the GUI, advances the input tweens once per frame
// and produces snapshots of the state for display.
package console

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jetsetilly/axial/gui"
	"github.com/jetsetilly/axial/input"
	"github.com/jetsetilly/axial/logger"
)

// Tween is the acceleration and gravity of an axis.
type Tween struct {
	Acceleration float64
	Gravity      float64
}

// Console owns the input manager. It should only be used by one goroutine.
type Console struct {
	g    *gui.GUI
	perm logger.Permission

	Input *input.Manager[Axis, Button]

	frame int

	// reset happens on the press of the reset button, not while it is held
	resetHeld bool
}

// Create a new console. The tweens map can be nil. Axes not in the map use
// the default tween.
func Create(g *gui.GUI, perm logger.Permission, keymap Keymap, tweens map[Axis]Tween) *Console {
	con := &Console{
		g:     g,
		perm:  perm,
		Input: input.NewManager[Axis, Button]().WithLogging(perm),
	}

	keymap.bind(con.Input)

	// make sure both axes exist even if the keymap is incomplete. reading an
	// axis creates it
	con.Input.Axis(Horz)
	con.Input.Axis(Vert)

	for a, t := range tweens {
		con.Input.WithAxisTween(a, t.Acceleration, t.Gravity)
		logger.Logf(perm, "console", "%s tween: acceleration %.2f, gravity %.2f", a, t.Acceleration, t.Gravity)
	}

	for _, b := range con.Input.Bindings() {
		logger.Log(perm, "console", b)
	}

	return con
}

// handleInput dispatches every pending key event
func (con *Console) handleInput() {
	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			if inp.Pressed {
				con.Input.OnKeyDown(inp.Key)
			} else {
				con.Input.OnKeyUp(inp.Key)
			}
		}
	}
}

// Step advances the console by dt seconds. Pending key events are dispatched
// before the input tweens are advanced.
func (con *Console) Step(dt float64) {
	con.handleInput()

	if con.Input.ButtonDown(ButtonReset) {
		if !con.resetHeld {
			con.resetHeld = true
			con.Input.ResetAxes()
		}
	} else {
		con.resetHeld = false
	}

	con.Input.Update(dt)
	con.frame++
}

// State returns a snapshot of the input state.
func (con *Console) State() gui.State {
	s := gui.State{
		Frame: con.frame,
		Stick: mgl64.Vec2{con.Input.Axis(Horz), con.Input.Axis(Vert)},
		Raw:   mgl64.Vec2{con.Input.AxisRaw(Horz), con.Input.AxisRaw(Vert)},
	}
	for _, b := range con.Input.Buttons() {
		if b == ButtonReset {
			continue
		}
		s.Buttons = append(s.Buttons, gui.ButtonState{
			Label:   b.String(),
			Pressed: con.Input.Button(b),
		})
	}
	return s
}

// Publish sends the current state to the GUI. The send does not block and a
// state that has not yet been collected by the GUI is replaced.
func (con *Console) Publish() gui.State {
	s := con.State()
	select {
	case <-con.g.SetState:
	default:
	}
	select {
	case con.g.SetState <- s:
	default:
	}
	return s
}
