package input_test

import (
	"slices"
	"testing"

	"github.com/jetsetilly/axial/input"
	"github.com/jetsetilly/axial/test"
)

type button int

const (
	buttonA button = iota
	buttonB
	buttonSelect
	buttonStart
)

type axis int

const (
	axisHorz axis = iota
	axisVert
)

const (
	keyZ input.Keycode = iota + 100
	keyX
	keyReturn
	keyRShift
	keyUp
	keyDown
	keyLeft
	keyRight
	keyUnbound
)

func newManager() *input.Manager[axis, button] {
	return input.NewManager[axis, button]().
		BindKeyToButton(keyZ, buttonA).
		BindKeyToButton(keyX, buttonB).
		BindKeyToButton(keyReturn, buttonStart).
		BindKeyToButton(keyRShift, buttonSelect).
		BindKeyToAxis(keyUp, axisVert, true).
		BindKeyToAxis(keyDown, axisVert, false).
		BindKeyToAxis(keyLeft, axisHorz, false).
		BindKeyToAxis(keyRight, axisHorz, true)
}

func TestDefaults(t *testing.T) {
	im := newManager()
	test.ExpectEquality(t, im.Axis(axisVert), 0.0)
	test.ExpectEquality(t, im.AxisRaw(axisVert), 0.0)
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)
	test.ExpectFailure(t, im.Button(buttonA))
	test.ExpectFailure(t, im.ButtonDown(buttonA))
	test.ExpectSuccess(t, im.ButtonUp(buttonA))
}

func TestButtons(t *testing.T) {
	im := newManager()

	im.OnKeyDown(keyZ)
	test.ExpectSuccess(t, im.Button(buttonA))
	test.ExpectSuccess(t, im.ButtonDown(buttonA))
	test.ExpectFailure(t, im.ButtonUp(buttonA))
	test.ExpectFailure(t, im.Button(buttonB))

	im.OnKeyUp(keyZ)
	test.ExpectFailure(t, im.Button(buttonA))
	test.ExpectSuccess(t, im.ButtonUp(buttonA))

	// last event wins. there is no press counting
	im.OnKeyDown(keyX)
	im.OnKeyDown(keyX)
	im.OnKeyUp(keyX)
	test.ExpectFailure(t, im.Button(buttonB))
}

func TestButtonSharedKeys(t *testing.T) {
	im := input.NewManager[axis, button]().
		BindKeyToButton(keyZ, buttonA).
		BindKeyToButton(keyReturn, buttonA)

	im.OnKeyDown(keyZ)
	im.OnKeyDown(keyReturn)
	im.OnKeyUp(keyReturn)
	test.ExpectFailure(t, im.Button(buttonA))
}

func TestAxisUp(t *testing.T) {
	im := newManager()

	im.OnKeyDown(keyUp)
	test.ExpectSuccess(t, im.AxisRaw(axisVert) > 0)

	var n int
	for im.Axis(axisVert) < 0.99 {
		prev := im.Axis(axisVert)
		im.Update(0.16)
		test.ExpectSuccess(t, im.Axis(axisVert) >= prev)
		test.ExpectSuccess(t, im.Axis(axisVert) >= 0.0)
		test.ExpectSuccess(t, im.Axis(axisVert) <= 1.0)
		n++
		test.DemandEquality(t, n < 100, true)
	}

	for range 5 {
		im.Update(0.16)
		test.ExpectEquality(t, im.Axis(axisVert), 1.0)
	}

	// other axis is not affected
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)

	// release and wind down
	im.OnKeyUp(keyUp)
	test.ExpectEquality(t, im.AxisRaw(axisVert), 0.0)

	n = 0
	for im.Axis(axisVert) > 0.01 {
		prev := im.Axis(axisVert)
		im.Update(0.16)
		test.ExpectSuccess(t, im.Axis(axisVert) <= prev)
		test.ExpectSuccess(t, im.Axis(axisVert) >= 0.0)
		n++
		test.DemandEquality(t, n < 100, true)
	}
	im.Update(0.16)
	test.ExpectEquality(t, im.Axis(axisVert), 0.0)
}

func TestAxisDown(t *testing.T) {
	im := newManager()

	im.OnKeyDown(keyDown)
	test.ExpectSuccess(t, im.AxisRaw(axisVert) < 0)

	var n int
	for im.Axis(axisVert) > -0.99 {
		im.Update(0.16)
		test.ExpectSuccess(t, im.Axis(axisVert) <= 0.0)
		test.ExpectSuccess(t, im.Axis(axisVert) >= -1.0)
		n++
		test.DemandEquality(t, n < 100, true)
	}

	im.Update(0.16)
	test.ExpectEquality(t, im.Axis(axisVert), -1.0)
}

func TestUpdateZero(t *testing.T) {
	im := newManager()
	im.OnKeyDown(keyRight)
	im.Update(0.1)
	im.OnKeyDown(keyDown)

	h, v := im.Axis(axisHorz), im.Axis(axisVert)
	hr, vr := im.AxisRaw(axisHorz), im.AxisRaw(axisVert)

	im.Update(0)
	test.ExpectEquality(t, im.Axis(axisHorz), h)
	test.ExpectEquality(t, im.Axis(axisVert), v)
	test.ExpectEquality(t, im.AxisRaw(axisHorz), hr)
	test.ExpectEquality(t, im.AxisRaw(axisVert), vr)
}

func TestOppositeKeyRelease(t *testing.T) {
	im := newManager()

	// releasing either key for an axis stops the axis, even if the other key
	// is still held
	im.OnKeyDown(keyLeft)
	im.OnKeyDown(keyRight)
	test.ExpectEquality(t, im.AxisRaw(axisHorz), 1.0)
	im.OnKeyUp(keyLeft)
	test.ExpectEquality(t, im.AxisRaw(axisHorz), 0.0)

	im.Update(0.16)
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)
}

func TestUnboundKeys(t *testing.T) {
	im := newManager()

	im.OnKeyDown(keyUnbound)
	im.OnKeyUp(keyUnbound)
	im.OnKeyDown(input.NoKey)
	im.OnKeyUp(input.NoKey)
	im.Update(0.16)

	test.ExpectEquality(t, im.Axis(axisVert), 0.0)
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)
	for _, b := range []button{buttonA, buttonB, buttonSelect, buttonStart} {
		test.ExpectFailure(t, im.Button(b))
	}
}

func TestRebinding(t *testing.T) {
	// the last binding for a key replaces earlier bindings
	im := input.NewManager[axis, button]().
		BindKeyToAxis(keyUp, axisVert, true).
		BindKeyToAxis(keyUp, axisVert, false)

	im.OnKeyDown(keyUp)
	test.ExpectEquality(t, im.AxisRaw(axisVert), -1.0)

	im = input.NewManager[axis, button]().
		BindKeyToAxis(keyZ, axisVert, true).
		BindKeyToButton(keyZ, buttonA)

	im.OnKeyDown(keyZ)
	test.ExpectSuccess(t, im.Button(buttonA))
	test.ExpectEquality(t, im.AxisRaw(axisVert), 0.0)

	test.ExpectEquality(t, len(im.Bindings()), 1)
	test.ExpectEquality(t, im.Bindings()[0].Effect.Kind, input.EffectButton)
}

func TestBindingPreservesAxisState(t *testing.T) {
	im := input.NewManager[axis, button]().
		BindKeyToAxis(keyUp, axisVert, true).
		WithAxisTween(axisVert, 1.0, 1.0)

	// binding a second key to an existing axis does not reset the tween
	im.BindKeyToAxis(keyDown, axisVert, false)
	im.OnKeyDown(keyUp)
	im.Update(0.25)
	test.ExpectApproximate(t, im.Axis(axisVert), 0.25, 1e-9)
}

func TestResetAxes(t *testing.T) {
	im := newManager()

	im.OnKeyDown(keyUp)
	im.OnKeyDown(keyLeft)
	im.Update(0.16)
	test.ExpectInequality(t, im.Axis(axisVert), 0.0)
	test.ExpectInequality(t, im.Axis(axisHorz), 0.0)

	im.ResetAxes()
	test.ExpectEquality(t, im.Axis(axisVert), 0.0)
	test.ExpectEquality(t, im.AxisRaw(axisVert), 0.0)
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)
	test.ExpectEquality(t, im.AxisRaw(axisHorz), 0.0)

	// keys are still physically held but the reset is not undone by update
	im.Update(0.16)
	test.ExpectEquality(t, im.Axis(axisVert), 0.0)
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)

	// a new key event is needed to move the axis again
	im.OnKeyDown(keyUp)
	im.Update(0.16)
	test.ExpectSuccess(t, im.Axis(axisVert) > 0)
}

func TestUnknownIdentifiers(t *testing.T) {
	im := input.NewManager[axis, button]()
	test.ExpectEquality(t, len(im.Axes()), 0)
	test.ExpectEquality(t, len(im.Buttons()), 0)

	// reading an axis creates it
	test.ExpectEquality(t, im.Axis(axisHorz), 0.0)
	test.ExpectEquality(t, im.AxisRaw(axisVert), 0.0)
	test.ExpectSuccess(t, slices.Equal(im.Axes(), []axis{axisHorz, axisVert}))

	// reading a button does not
	test.ExpectFailure(t, im.Button(buttonA))
	test.ExpectSuccess(t, im.ButtonUp(buttonA))
	test.ExpectEquality(t, len(im.Buttons()), 0)
}

func TestRegistryOrder(t *testing.T) {
	im := newManager()
	test.ExpectSuccess(t, slices.Equal(im.Axes(), []axis{axisVert, axisHorz}))
	test.ExpectSuccess(t, slices.Equal(im.Buttons(), []button{buttonA, buttonB, buttonStart, buttonSelect}))

	b := im.Bindings()
	test.DemandEquality(t, len(b), 8)
	test.ExpectEquality(t, b[0].Event, input.KeyEvent(keyZ))
	test.ExpectEquality(t, b[4].Effect, input.Effect[axis, button]{Kind: input.EffectAxis, Axis: axisVert, Positive: true})
}

func TestWithAxisTween(t *testing.T) {
	im := newManager().WithAxisTween(axisHorz, 2.0, -1.0)

	im.OnKeyDown(keyRight)
	im.Update(0.25)
	test.ExpectApproximate(t, im.Axis(axisHorz), 0.5, 1e-9)

	// negative gravity was ignored so the default applies
	im.OnKeyUp(keyRight)
	im.Update(0.1)
	test.ExpectApproximate(t, im.Axis(axisHorz), 0.5-input.DefaultGravity*0.1, 1e-9)
}

func TestMousePlaceholders(t *testing.T) {
	im := newManager()
	x, y := im.MousePosition()
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.0)
	x, y = im.MouseScrollDelta()
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.0)
	test.ExpectFailure(t, im.MouseButton(0))
	test.ExpectFailure(t, im.MouseButtonDown(0))
	test.ExpectSuccess(t, im.MouseButtonUp(0))
}

func TestStrings(t *testing.T) {
	b := newManager().Bindings()
	test.ExpectEquality(t, b[0].String(), "key 100 -> button 0")
	test.ExpectEquality(t, b[5].String(), "key 105 -> axis 1-")
}
