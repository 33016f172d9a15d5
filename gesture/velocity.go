package gesture

import (
	"time"

	"gioui.org/f32"
	"gonum.org/v1/gonum/stat"
)

// Samples older than this no longer describe the pointer's instantaneous
// velocity.
const velocityWindow = 100 * time.Millisecond

// velocityTracker estimates instantaneous pointer velocity from a sliding
// window of timed samples. Each axis is fitted with an ordinary least-squares
// line; the slope is the velocity in units per second. Fitting instead of
// differencing the last two samples keeps the estimate stable on jittery
// input.
//
// A velocityTracker mirrors every event of its recognizer but never takes
// part in state transitions or direction decisions. Recognizers replace it
// wholesale on reset, discarding the old history.
type velocityTracker struct {
	times []float64 // seconds
	xs    []float64
	ys    []float64
}

func newVelocityTracker() *velocityTracker {
	return &velocityTracker{}
}

func (vt *velocityTracker) sample(t time.Duration, p f32.Point) {
	vt.times = append(vt.times, t.Seconds())
	vt.xs = append(vt.xs, float64(p.X))
	vt.ys = append(vt.ys, float64(p.Y))

	cutoff := (t - velocityWindow).Seconds()
	drop := 0
	for drop < len(vt.times) && vt.times[drop] < cutoff {
		drop++
	}
	vt.times = vt.times[drop:]
	vt.xs = vt.xs[drop:]
	vt.ys = vt.ys[drop:]
}

func (vt *velocityTracker) velocity() f32.Point {
	n := len(vt.times)
	if n < 2 || vt.times[n-1] == vt.times[0] {
		return f32.Point{}
	}
	_, vx := stat.LinearRegression(vt.times, vt.xs, nil, false)
	_, vy := stat.LinearRegression(vt.times, vt.ys, nil, false)
	return f32.Pt(float32(vx), float32(vy))
}
