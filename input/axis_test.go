package input

import (
	"testing"

	"github.com/jetsetilly/axial/test"
)

func TestAxisAcceleration(t *testing.T) {
	ax := newAxisStatus()
	ax.direction = 1

	ax.step(0.1)
	test.ExpectApproximate(t, ax.position, 0.4, 1e-9)
	ax.step(0.1)
	test.ExpectApproximate(t, ax.position, 0.8, 1e-9)

	// step is capped at the distance to the end of the range
	ax.step(0.1)
	test.ExpectEquality(t, ax.position, 1.0)
	ax.step(0.1)
	test.ExpectEquality(t, ax.position, 1.0)

	ax = newAxisStatus()
	ax.direction = -1
	for range 10 {
		prev := ax.position
		ax.step(0.07)
		test.ExpectSuccess(t, ax.position <= prev)
		test.ExpectSuccess(t, ax.position >= -1)
	}
	test.ExpectEquality(t, ax.position, -1.0)
}

func TestAxisGravity(t *testing.T) {
	ax := newAxisStatus()
	ax.position = 0.5

	ax.step(0.1)
	test.ExpectApproximate(t, ax.position, 0.2, 1e-9)

	// gravity does not overshoot zero
	ax.step(0.1)
	test.ExpectEquality(t, ax.position, 0.0)
	ax.step(0.1)
	test.ExpectEquality(t, ax.position, 0.0)

	ax.position = -0.5
	ax.step(0.1)
	test.ExpectApproximate(t, ax.position, -0.2, 1e-9)
	ax.step(1.0)
	test.ExpectEquality(t, ax.position, 0.0)
}

func TestAxisZeroTime(t *testing.T) {
	for _, dir := range []float64{-1, 0, 1} {
		ax := newAxisStatus()
		ax.position = 0.3
		ax.direction = dir
		ax.step(0)
		test.ExpectEquality(t, ax.position, 0.3)
		test.ExpectEquality(t, ax.direction, dir)
	}
}

func TestAxisReversalFromLimit(t *testing.T) {
	// an axis at the end of the range does not move when the direction is
	// reversed because the step is capped at 1-|position|
	ax := newAxisStatus()
	ax.position = 1
	ax.direction = -1
	ax.step(0.16)
	test.ExpectEquality(t, ax.position, 1.0)

	// an axis short of the end of the range does move, but slowly at first
	ax.position = 0.9
	ax.step(0.16)
	test.ExpectApproximate(t, ax.position, 0.8, 1e-9)
}

func TestAxisCustomTween(t *testing.T) {
	ax := newAxisStatus()
	ax.acceleration = 1
	ax.gravity = 0.5
	ax.direction = 1
	ax.step(0.25)
	test.ExpectApproximate(t, ax.position, 0.25, 1e-9)
	ax.direction = 0
	ax.step(0.25)
	test.ExpectApproximate(t, ax.position, 0.125, 1e-9)
}
