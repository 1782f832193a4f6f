package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ButtonState is the label and pressed state of a logical button.
type ButtonState struct {
	Label   string
	Pressed bool
}

// State is a snapshot of the logical input state.
type State struct {
	Frame int

	// tweened position of the horizontal (X) and vertical (Y) axes
	Stick mgl64.Vec2

	// direction of the horizontal and vertical axes
	Raw mgl64.Vec2

	Buttons []ButtonState
}

// Equal returns true if the two states have the same axis and button values.
// The frame number is not compared.
func (s State) Equal(o State) bool {
	if s.Stick != o.Stick || s.Raw != o.Raw {
		return false
	}
	if len(s.Buttons) != len(o.Buttons) {
		return false
	}
	for i := range s.Buttons {
		if s.Buttons[i] != o.Buttons[i] {
			return false
		}
	}
	return true
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "X %+.2f [%+.0f]  Y %+.2f [%+.0f]", s.Stick.X(), s.Raw.X(), s.Stick.Y(), s.Raw.Y())
	for _, btn := range s.Buttons {
		if btn.Pressed {
			fmt.Fprintf(&b, "  %s", btn.Label)
		}
	}
	return b.String()
}
