package input

import "math"

// default tween parameters in units per second
const (
	DefaultAcceleration = 4.0
	DefaultGravity      = 3.0
)

type axisStatus struct {
	// where the axis currently is. always in the range -1 to +1
	position float64

	// where the axis is moving toward. for keys this is always -1, 0 or +1
	direction float64

	// speed at which the position moves toward the direction
	acceleration float64

	// speed at which the position falls back to zero when the direction is zero
	gravity float64
}

func newAxisStatus() *axisStatus {
	return &axisStatus{
		acceleration: DefaultAcceleration,
		gravity:      DefaultGravity,
	}
}

// step advances the tween by dt seconds. a dt of zero leaves the axis
// unchanged
func (ax *axisStatus) step(dt float64) {
	if ax.direction != 0 {
		// the step is capped by the distance from the nearest end of the range.
		// note that this means an axis at +1 or -1 will not move if the
		// direction is reversed without first being released
		dx := math.Min(ax.acceleration*dt, 1-math.Abs(ax.position))
		if ax.direction > 0 {
			ax.position += dx
		} else {
			ax.position -= dx
		}
	} else {
		// gravity never takes the position past zero
		dx := math.Min(ax.gravity*dt, math.Abs(ax.position))
		if ax.position > 0 {
			ax.position -= dx
		} else {
			ax.position += dx
		}
	}

	// rounding in the subtraction above can leave the position a fraction
	// outside the range
	ax.position = math.Max(-1, math.Min(1, ax.position))
}

func (ax *axisStatus) reset() {
	ax.position = 0
	ax.direction = 0
}
