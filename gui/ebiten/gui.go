// Package ebiten implements the GUI with the ebiten game engine.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/axial/gui"
	"github.com/jetsetilly/axial/logger"
	"github.com/jetsetilly/axial/version"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

// logical size of the screen
const (
	screenWidth  = 320
	screenHeight = 240
)

// size of the box the stick is drawn in
const stickBox = 160

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	// the most recent state received from the console
	state gui.State

	// key buffers are reused every frame
	pressed  []ebiten.Key
	released []ebiten.Key

	// key events waiting for room in the UserInput channel
	pending gui.Pending
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.inputKeyboard()
	if err != nil {
		return err
	}

	// retrieve any pending state
	select {
	case eg.state = <-eg.g.SetState:
	default:
	}

	return nil
}

// stickPosition converts the stick to screen coordinates inside the stick box.
// positive Y on the stick is up the screen
func stickPosition(stick mgl64.Vec2) (float32, float32) {
	centre := mgl64.Vec2{screenWidth / 2, screenHeight / 2}
	p := centre.Add(mgl64.Vec2{stick.X(), -stick.Y()}.Mul(stickBox / 2))
	return float32(p.X()), float32(p.Y())
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 24, A: 255})

	grey := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	x := float32(screenWidth-stickBox) / 2
	y := float32(screenHeight-stickBox) / 2
	vector.StrokeRect(screen, x, y, stickBox, stickBox, 1, grey, false)
	vector.StrokeLine(screen, screenWidth/2, y, screenWidth/2, y+stickBox, 1, grey, false)
	vector.StrokeLine(screen, x, screenHeight/2, x+stickBox, screenHeight/2, 1, grey, false)

	// target of the stick, followed by the tweened position
	rx, ry := stickPosition(eg.state.Raw)
	vector.StrokeCircle(screen, rx, ry, 6, 1, color.RGBA{R: 200, G: 64, B: 64, A: 255}, true)
	sx, sy := stickPosition(eg.state.Stick)
	vector.DrawFilledCircle(screen, sx, sy, 5, color.RGBA{R: 64, G: 200, B: 200, A: 255}, true)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nmagnitude %.2f", eg.state, eg.state.Stick.Len()))

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch opens the window and runs until the endGui channel receives a value
// or the window is closed.
func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowPosition(10, 10)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	err = ebiten.RunGame(eg)
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
