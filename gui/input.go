package gui

import "github.com/jetsetilly/axial/input"

// Input is a single key event from the window.
type Input struct {
	Key     input.Keycode
	Pressed bool
}
