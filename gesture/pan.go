package gesture

import (
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
)

// Pan recognizes single-finger vertical drags. Tracking starts with the
// press itself; there is no recognition delay. Movement that crosses the pan
// threshold in the horizontal direction cancels the gesture so a competing
// horizontal recognizer can claim it.
//
// After a terminal state the recognizer ignores input until the consumer
// calls Reset.
type Pan struct {
	// OnStateChanged, if set, is invoked for every state transition, in
	// event order. Reset does not invoke it.
	OnStateChanged func(old, new State)

	state     State
	startMode StartMode
	tracker   Tracker
	velocity  *velocityTracker

	pressed bool
	pid     pointer.ID
}

// Add the handler to the operation list to receive pointer events.
func (p *Pan) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   p,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Update processes the queue's pointer events and returns the resulting
// state transitions in order.
//
// Presses are staged until the end of their batch: a second press for a
// different pointer in the same batch means a multi-finger touch, which fails
// the gesture instead of beginning it. A second press in a later batch, with
// the gesture already under way, is ignored entirely.
func (p *Pan) Update(q event.Queue) []StateTransition {
	var trans []StateTransition

	var (
		staged   bool
		stagedEv pointer.Event
	)
	commit := func() {
		if !staged {
			return
		}
		staged = false
		p.pressed = true
		p.pid = stagedEv.PointerID
		if p.velocity == nil {
			p.velocity = newVelocityTracker()
		}
		p.tracker.Begin(stagedEv.Position)
		p.velocity.sample(stagedEv.Time, stagedEv.Position)
		trans = p.setState(trans, StateBegan)
	}

	for _, evt := range q.Events(p) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}

		switch e.Kind {
		case pointer.Press:
			if p.state.Done() || p.pressed {
				// Extra finger while a gesture is under way; it never
				// reaches the tracker.
				continue
			}
			if staged {
				if e.PointerID == stagedEv.PointerID {
					continue
				}
				// Two fingers down at once. Only single-touch gestures
				// are supported.
				staged = false
				if p.state == StatePossible {
					trans = p.setState(trans, StateFailed)
				}
				continue
			}
			staged = true
			stagedEv = e
		case pointer.Drag:
			commit()
			if p.state.Done() || !p.pressed || e.PointerID != p.pid {
				continue
			}
			p.velocity.sample(e.Time, e.Position)
			switch p.tracker.Update(e.Position) {
			case DecisionRejected:
				trans = p.setState(trans, StateCancelled)
			default:
				trans = p.setState(trans, StateChanged)
			}
		case pointer.Release:
			commit()
			if p.state.Done() || !p.pressed || e.PointerID != p.pid {
				continue
			}
			p.pressed = false
			p.velocity.sample(e.Time, e.Position)
			trans = p.setState(trans, StateEnded)
		case pointer.Cancel:
			commit()
			p.pressed = false
			if p.state.Done() {
				continue
			}
			trans = p.setState(trans, StateCancelled)
		}
	}
	commit()

	return trans
}

func (p *Pan) setState(trans []StateTransition, s State) []StateTransition {
	old := p.state
	p.state = s
	if p.OnStateChanged != nil {
		p.OnStateChanged(old, s)
	}
	return append(trans, StateTransition{From: old, To: s})
}

// State returns the recognizer's current lifecycle state.
func (p *Pan) State() State {
	return p.state
}

// DidPan reports whether the current gesture has been confirmed as a
// vertical pan.
func (p *Pan) DidPan() bool {
	return p.tracker.DidPan()
}

// StartMode returns the start mode stored by the consumer.
func (p *Pan) StartMode() StartMode {
	return p.startMode
}

// SetStartMode records the spatial context the gesture started in.
func (p *Pan) SetStartMode(m StartMode) {
	p.startMode = m
}

// Translation returns the displacement since the gesture began or since the
// last SetTranslation call, expressed in sp.
func (p *Pan) Translation(sp Space) f32.Point {
	return p.tracker.Translation(sp)
}

// SetTranslation rebases the translation baseline; see Tracker.SetTranslation.
func (p *Pan) SetTranslation(v f32.Point, sp Space) {
	p.tracker.SetTranslation(v, sp)
}

// Velocity returns the estimated pointer velocity in units per second,
// expressed in sp.
func (p *Pan) Velocity(sp Space) f32.Point {
	if p.velocity == nil {
		return f32.Point{}
	}
	return sp.vector(p.velocity.velocity())
}

// Reset returns the recognizer to StatePossible, clears the tracker and
// start mode, and discards the velocity history. The consumer must call it
// after a terminal state before the recognizer can track the next gesture.
func (p *Pan) Reset() {
	p.state = StatePossible
	p.startMode = StartMode{}
	p.tracker.Reset()
	p.velocity = newVelocityTracker()
	p.pressed = false
}
