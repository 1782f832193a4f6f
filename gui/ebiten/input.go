package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/axial/console"
	"github.com/jetsetilly/axial/gui"
	"github.com/jetsetilly/axial/input"
)

// Keymap returns the default bindings of physical keys for the console.
func Keymap() console.Keymap {
	return console.Keymap{
		Up:      keycodes(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    keycodes(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    keycodes(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   keycodes(ebiten.KeyD, ebiten.KeyArrowRight),
		Button1: keycodes(ebiten.KeyEnter, ebiten.KeyZ),
		Button2: keycodes(ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyX),
		Button3: keycodes(ebiten.KeyControlLeft, ebiten.KeyControlRight, ebiten.KeyC),
		Reset:   keycodes(ebiten.KeyR),
	}
}

func keycodes(keys ...ebiten.Key) []input.Keycode {
	kc := make([]input.Keycode, 0, len(keys))
	for _, k := range keys {
		kc = append(kc, keycode(k))
	}
	return kc
}

// keycode converts an ebiten key to a keycode. keys outside the range of
// known keys are converted to input.NoKey
func keycode(k ebiten.Key) input.Keycode {
	if k < 0 || k > ebiten.KeyMax {
		return input.NoKey
	}
	return input.Keycode(k)
}

func (eg *guiEbiten) inputKeyboard() error {
	eg.released = inpututil.AppendJustReleasedKeys(eg.released[:0])
	eg.pressed = inpututil.AppendJustPressedKeys(eg.pressed[:0])

	// released keys are queued before pressed keys. if a key is released and
	// another pressed in the same frame then the pressed key wins
	for _, r := range eg.released {
		if r == ebiten.KeyEscape {
			return ebiten.Termination
		}
		eg.pending.Push(gui.Input{Key: keycode(r), Pressed: false})
	}

	for _, p := range eg.pressed {
		if p == ebiten.KeyEscape {
			continue
		}
		eg.pending.Push(gui.Input{Key: keycode(p), Pressed: true})
	}

	// events that do not fit in the channel are sent on a later frame
	eg.pending.Flush(eg.g.UserInput)

	return nil
}
