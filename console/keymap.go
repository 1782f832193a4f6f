package console

import "github.com/jetsetilly/axial/input"

// Keymap lists the physical keys for each logical control. The keycodes are
// supplied by the window implementation.
type Keymap struct {
	Up    []input.Keycode
	Down  []input.Keycode
	Left  []input.Keycode
	Right []input.Keycode

	Button1 []input.Keycode
	Button2 []input.Keycode
	Button3 []input.Keycode
	Reset   []input.Keycode
}

func (km Keymap) bind(im *input.Manager[Axis, Button]) {
	for _, k := range km.Up {
		im.BindKeyToAxis(k, Vert, true)
	}
	for _, k := range km.Down {
		im.BindKeyToAxis(k, Vert, false)
	}
	for _, k := range km.Left {
		im.BindKeyToAxis(k, Horz, false)
	}
	for _, k := range km.Right {
		im.BindKeyToAxis(k, Horz, true)
	}
	for _, k := range km.Button1 {
		im.BindKeyToButton(k, Button1)
	}
	for _, k := range km.Button2 {
		im.BindKeyToButton(k, Button2)
	}
	for _, k := range km.Button3 {
		im.BindKeyToButton(k, Button3)
	}
	for _, k := range km.Reset {
		im.BindKeyToButton(k, ButtonReset)
	}
}
