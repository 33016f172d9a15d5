package gesture

import (
	"math"

	"gioui.org/f32"
)

// Space names the coordinate space translations and velocities are reported
// in, as an affine transform from the recognizer's own space to the target
// space. The zero value is the recognizer's own space.
type Space struct {
	Transform f32.Affine2D
}

// vector applies the linear part of the transform, ignoring its offset.
func (sp Space) vector(v f32.Point) f32.Point {
	return sp.Transform.Transform(v).Sub(sp.Transform.Transform(f32.Point{}))
}

func (sp Space) invVector(v f32.Point) f32.Point {
	inv := sp.Transform.Invert()
	return inv.Transform(v).Sub(inv.Transform(f32.Point{}))
}

// Decision is the outcome of feeding a sample to a Tracker.
type Decision uint8

const (
	// DecisionPending means total displacement hasn't crossed the pan
	// threshold yet and no direction has been classified.
	DecisionPending Decision = iota
	// DecisionConfirmed means the gesture is a vertical pan. Reported for
	// the sample that crossed the threshold and for every sample after it.
	DecisionConfirmed
	// DecisionRejected means the threshold-crossing displacement was
	// horizontal and the gesture should be cancelled.
	DecisionRejected
)

// Tracker follows a single pointer from a fixed start point. It classifies
// the gesture's direction exactly once, on the first sample whose total
// displacement from the start point exceeds the pan threshold; per-sample
// deltas never participate in the decision.
//
// The point fields are only meaningful between Begin and Reset.
type Tracker struct {
	initial f32.Point
	// last is the translation baseline. It starts at the initial point and
	// moves only through SetTranslation, letting the consumer take part of
	// the translation and be handed the remainder from then on.
	last     f32.Point
	current  f32.Point
	tracking bool
	didPan   bool
}

// Begin starts a gesture at p.
func (t *Tracker) Begin(p f32.Point) {
	t.initial = p
	t.last = p
	t.current = p
	t.tracking = true
	t.didPan = false
}

// Update records a new sample and reports the direction decision. Once a pan
// has been confirmed the classification is never revisited.
func (t *Tracker) Update(p f32.Point) Decision {
	if !t.tracking {
		return DecisionPending
	}
	t.current = p
	if t.didPan {
		return DecisionConfirmed
	}
	d := t.current.Sub(t.initial)
	if math.Hypot(float64(d.X), float64(d.Y)) <= panThreshold {
		return DecisionPending
	}
	if direction(d) == Horizontal {
		return DecisionRejected
	}
	t.didPan = true
	return DecisionConfirmed
}

// direction classifies a displacement. Exact diagonals count as vertical.
func direction(v f32.Point) Axis {
	if v.X*v.X > v.Y*v.Y {
		return Horizontal
	}
	return Vertical
}

// DidPan reports whether the gesture has been confirmed as a vertical pan.
func (t *Tracker) DidPan() bool {
	return t.didPan
}

// Translation returns the displacement accumulated since Begin or since the
// last SetTranslation call, expressed in sp. It is the zero vector before the
// first sample and between gestures.
func (t *Tracker) Translation(sp Space) f32.Point {
	if !t.tracking {
		return f32.Point{}
	}
	return sp.vector(t.current.Sub(t.last))
}

// SetTranslation rebases the translation baseline so that, with no further
// samples, Translation reports v. Passing the zero vector consumes the
// pending translation entirely; subsequent samples report deltas relative to
// the new baseline.
func (t *Tracker) SetTranslation(v f32.Point, sp Space) {
	if !t.tracking {
		return
	}
	t.last = t.current.Sub(sp.invVector(v))
}

// Reset clears all points and the pan decision, readying the Tracker for the
// next gesture.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
