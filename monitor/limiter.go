package monitor

import "time"

// limiter paces the console at a fixed number of ticks per second and
// measures the real time between ticks
type limiter struct {
	tick *time.Ticker
	last time.Time
}

// the tick interval is at least one nanosecond
const maxTPS = int(time.Second)

func newLimiter(tps int) *limiter {
	d := time.Second / time.Duration(max(tps, 1))
	if d <= 0 {
		d = 1
	}
	return &limiter{
		tick: time.NewTicker(d),
		last: time.Now(),
	}
}

// elapsed returns the number of seconds since the previous call
func (l *limiter) elapsed(now time.Time) float64 {
	dt := now.Sub(l.last).Seconds()
	l.last = now

	// the ticker channel may be read late, or the clock may have jumped
	if dt < 0 {
		dt = 0
	}
	return dt
}

func (l *limiter) stop() {
	l.tick.Stop()
}
