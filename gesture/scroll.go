package gesture

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// Scroll coordinates reported by some platforms are off by a fixed vertical
// amount. The bias was measured empirically and is applied to every location
// query.
const scrollLocationBias = 20.0

// inf is the scroll range accepted by the handler. Scroll events are only
// delivered to handlers with non-empty bounds.
var inf = image.Rect(-1e6, -1e6, 1e6, 1e6)

// Scroll adapts trackpad and mouse-wheel input to the pan contract. Only
// scroll events reach the recognizer; all other pointer input is rejected up
// front.
//
// The cursor doesn't move during a scroll sequence, so the recognizer tracks
// a virtual location instead: it anchors at the cursor position of the first
// event and then moves opposite each scroll delta, producing the same
// translations a finger dragging the content would. Scroll sequences carry no
// release event; the gesture ends after scrollEndTimeout without input.
type Scroll struct {
	// OnStateChanged, if set, is invoked for every state transition, in
	// event order. Reset does not invoke it.
	OnStateChanged func(old, new State)

	state     State
	startMode StartMode
	tracker   Tracker
	velocity  *velocityTracker

	scrolling bool
	virtual   f32.Point
	lastPos   f32.Point
	idleAt    time.Time
}

// Add the handler to the operation list to receive scroll events. While a
// sequence is live it also schedules a frame at the end-of-scroll deadline.
func (s *Scroll) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:          s,
		Kinds:        pointer.Scroll,
		ScrollBounds: inf,
	}.Add(ops)
	if s.scrolling && !s.state.Done() {
		op.InvalidateOp{At: s.idleAt}.Add(ops)
	}
}

// Update processes this frame's scroll events and returns the resulting
// state transitions in order. Once the gesture's total displacement is
// classified horizontal the state is forced to cancelled and the rest of the
// sequence is ignored.
func (s *Scroll) Update(gtx layout.Context) []StateTransition {
	var trans []StateTransition

	for _, evt := range gtx.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok || e.Kind != pointer.Scroll {
			continue
		}
		if s.state.Done() {
			continue
		}

		s.lastPos = e.Position
		s.idleAt = gtx.Now.Add(scrollEndTimeout)

		if !s.scrolling {
			s.scrolling = true
			if s.velocity == nil {
				s.velocity = newVelocityTracker()
			}
			s.virtual = adjustScrollLocation(e.Position)
			s.tracker.Begin(s.virtual)
			s.velocity.sample(e.Time, s.virtual)
			trans = s.setState(trans, StateBegan)
			if e.Scroll == (f32.Point{}) {
				continue
			}
		}

		s.virtual = s.virtual.Sub(e.Scroll)
		s.velocity.sample(e.Time, s.virtual)
		switch s.tracker.Update(s.virtual) {
		case DecisionRejected:
			trans = s.setState(trans, StateCancelled)
		default:
			trans = s.setState(trans, StateChanged)
		}
	}

	if s.scrolling && !s.state.Done() && !gtx.Now.Before(s.idleAt) {
		s.scrolling = false
		trans = s.setState(trans, StateEnded)
	}

	return trans
}

func (s *Scroll) setState(trans []StateTransition, st State) []StateTransition {
	old := s.state
	s.state = st
	if s.OnStateChanged != nil {
		s.OnStateChanged(old, st)
	}
	return append(trans, StateTransition{From: old, To: st})
}

// Location returns the cursor position of the most recent scroll event,
// corrected by the vertical bias.
func (s *Scroll) Location() f32.Point {
	return adjustScrollLocation(s.lastPos)
}

func adjustScrollLocation(p f32.Point) f32.Point {
	return f32.Pt(p.X, p.Y+scrollLocationBias)
}

// State returns the recognizer's current lifecycle state.
func (s *Scroll) State() State {
	return s.state
}

// DidPan reports whether the current sequence has been confirmed as a
// vertical pan.
func (s *Scroll) DidPan() bool {
	return s.tracker.DidPan()
}

// StartMode returns the start mode stored by the consumer.
func (s *Scroll) StartMode() StartMode {
	return s.startMode
}

// SetStartMode records the spatial context the sequence started in.
func (s *Scroll) SetStartMode(m StartMode) {
	s.startMode = m
}

// Translation returns the displacement since the sequence began or since the
// last SetTranslation call, expressed in sp.
func (s *Scroll) Translation(sp Space) f32.Point {
	return s.tracker.Translation(sp)
}

// SetTranslation rebases the translation baseline; see Tracker.SetTranslation.
func (s *Scroll) SetTranslation(v f32.Point, sp Space) {
	s.tracker.SetTranslation(v, sp)
}

// Velocity returns the estimated velocity of the virtual location in units
// per second, expressed in sp.
func (s *Scroll) Velocity(sp Space) f32.Point {
	if s.velocity == nil {
		return f32.Point{}
	}
	return sp.vector(s.velocity.velocity())
}

// Reset returns the recognizer to StatePossible, clears the tracker and
// start mode, and discards the velocity history.
func (s *Scroll) Reset() {
	s.state = StatePossible
	s.startMode = StartMode{}
	s.tracker.Reset()
	s.velocity = newVelocityTracker()
	s.scrolling = false
}
