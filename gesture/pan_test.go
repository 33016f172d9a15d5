package gesture

import (
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
)

// queue is a canned event.Queue delivering one batch to every tag.
type queue []event.Event

func (q queue) Events(t event.Tag) []event.Event {
	return q
}

func press(id pointer.ID, pos f32.Point, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Press, PointerID: id, Position: pos, Time: at}
}

func drag(id pointer.ID, pos f32.Point, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Drag, PointerID: id, Position: pos, Time: at}
}

func release(id pointer.ID, pos f32.Point, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Release, PointerID: id, Position: pos, Time: at}
}

func transitionsEqual(got, want []StateTransition) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPanVerticalConfirms(t *testing.T) {
	var p Pan
	got := p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
	})
	want := []StateTransition{
		{StatePossible, StateBegan},
		{StateBegan, StateChanged},
	}
	if !transitionsEqual(got, want) {
		t.Errorf("transitions=%v, want %v", got, want)
	}
	if !p.DidPan() {
		t.Errorf("DidPan()=false, want true")
	}
	if p.State() != StateChanged {
		t.Errorf("State()=%v, want %v", p.State(), StateChanged)
	}
}

func TestPanHorizontalCancels(t *testing.T) {
	var p Pan
	got := p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(10, 0), 10*time.Millisecond),
	})
	want := []StateTransition{
		{StatePossible, StateBegan},
		{StateBegan, StateCancelled},
	}
	if !transitionsEqual(got, want) {
		t.Errorf("transitions=%v, want %v", got, want)
	}
	if p.DidPan() {
		t.Errorf("DidPan()=true, want false")
	}

	// The gesture is over; further input must not resurrect it.
	got = p.Update(queue{drag(1, f32.Pt(10, 100), 20*time.Millisecond)})
	if len(got) != 0 {
		t.Errorf("transitions after cancellation=%v, want none", got)
	}
	if p.State() != StateCancelled {
		t.Errorf("State()=%v, want %v", p.State(), StateCancelled)
	}
}

func TestPanBelowThresholdForwards(t *testing.T) {
	var p Pan
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(3, 3), 10*time.Millisecond),
	})
	if p.DidPan() {
		t.Fatalf("DidPan()=true below threshold")
	}
	if p.State() != StateChanged {
		t.Fatalf("State()=%v, want %v", p.State(), StateChanged)
	}

	// Total displacement (3,8) crosses the threshold and is vertical.
	p.Update(queue{drag(1, f32.Pt(3, 8), 20*time.Millisecond)})
	if !p.DidPan() {
		t.Errorf("DidPan()=false, want true")
	}
	if p.State() != StateChanged {
		t.Errorf("State()=%v, want %v", p.State(), StateChanged)
	}
}

func TestPanConfirmationIsFinal(t *testing.T) {
	var p Pan
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
	})
	got := p.Update(queue{drag(1, f32.Pt(200, 10), 20*time.Millisecond)})
	want := []StateTransition{{StateChanged, StateChanged}}
	if !transitionsEqual(got, want) {
		t.Errorf("transitions=%v, want %v", got, want)
	}
}

func TestPanMultiTouchFails(t *testing.T) {
	var p Pan
	got := p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		press(2, f32.Pt(50, 50), 0),
	})
	want := []StateTransition{{StatePossible, StateFailed}}
	if !transitionsEqual(got, want) {
		t.Errorf("transitions=%v, want %v", got, want)
	}
	if p.DidPan() {
		t.Errorf("DidPan()=true, want false")
	}
	// Neither touch may feed the tracker.
	if tr := p.Translation(Space{}); tr != (f32.Point{}) {
		t.Errorf("Translation=%v, want zero", tr)
	}
}

func TestPanLateSecondTouchIgnored(t *testing.T) {
	var p Pan
	p.Update(queue{press(1, f32.Pt(0, 0), 0)})
	if p.State() != StateBegan {
		t.Fatalf("State()=%v, want %v", p.State(), StateBegan)
	}

	got := p.Update(queue{press(2, f32.Pt(50, 50), 10*time.Millisecond)})
	if len(got) != 0 {
		t.Errorf("transitions for extra touch=%v, want none", got)
	}

	// Movement of the extra finger must not affect tracking either.
	p.Update(queue{drag(2, f32.Pt(90, 50), 20*time.Millisecond)})
	if tr := p.Translation(Space{}); tr != (f32.Point{}) {
		t.Errorf("Translation=%v, want zero", tr)
	}

	p.Update(queue{drag(1, f32.Pt(0, 10), 30*time.Millisecond)})
	if !p.DidPan() {
		t.Errorf("DidPan()=false, want true")
	}
}

func TestPanEndAndCancelEvents(t *testing.T) {
	var p Pan
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
		release(1, f32.Pt(0, 12), 20*time.Millisecond),
	})
	if p.State() != StateEnded {
		t.Errorf("State()=%v, want %v", p.State(), StateEnded)
	}

	var q Pan
	q.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		pointer.Event{Kind: pointer.Cancel},
	})
	if q.State() != StateCancelled {
		t.Errorf("State()=%v, want %v", q.State(), StateCancelled)
	}
}

func TestPanTranslationConsume(t *testing.T) {
	var p Pan
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 30), 10*time.Millisecond),
	})
	if got, want := p.Translation(Space{}), f32.Pt(0, 30); got != want {
		t.Fatalf("Translation=%v, want %v", got, want)
	}
	p.SetTranslation(f32.Point{}, Space{})
	if got := p.Translation(Space{}); got != (f32.Point{}) {
		t.Errorf("Translation after consuming=%v, want zero", got)
	}
	p.Update(queue{drag(1, f32.Pt(0, 37), 20*time.Millisecond)})
	if got, want := p.Translation(Space{}), f32.Pt(0, 7); got != want {
		t.Errorf("Translation=%v, want %v", got, want)
	}
}

func TestPanVelocity(t *testing.T) {
	var p Pan
	// 10 units every 10ms, straight down: 1000 units/s.
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
		drag(1, f32.Pt(0, 20), 20*time.Millisecond),
		drag(1, f32.Pt(0, 30), 30*time.Millisecond),
	})
	v := p.Velocity(Space{})
	if math.Abs(float64(v.X)) > 1e-3 || math.Abs(float64(v.Y)-1000) > 1e-1 {
		t.Errorf("Velocity=%v, want ~(0,1000)", v)
	}

	scaled := Space{Transform: f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(0.5, 0.5))}
	v = p.Velocity(scaled)
	if math.Abs(float64(v.Y)-500) > 1e-1 {
		t.Errorf("Velocity in scaled space=%v, want ~(0,500)", v)
	}
}

func TestPanReset(t *testing.T) {
	var p Pan
	var list struct{}
	p.SetStartMode(StartMode{Kind: StartModeScrollableArea, CompetingScroller: &list})
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
		release(1, f32.Pt(0, 10), 20*time.Millisecond),
	})
	p.Reset()

	if p.State() != StatePossible {
		t.Errorf("State()=%v, want %v", p.State(), StatePossible)
	}
	if p.DidPan() {
		t.Errorf("DidPan()=true after Reset")
	}
	if p.StartMode() != (StartMode{}) {
		t.Errorf("StartMode()=%v, want zero", p.StartMode())
	}
	// The velocity tracker is replaced, so the old history is gone.
	if v := p.Velocity(Space{}); v != (f32.Point{}) {
		t.Errorf("Velocity after Reset=%v, want zero", v)
	}

	// The recognizer is ready for a fresh gesture.
	got := p.Update(queue{press(1, f32.Pt(5, 5), 30*time.Millisecond)})
	want := []StateTransition{{StatePossible, StateBegan}}
	if !transitionsEqual(got, want) {
		t.Errorf("transitions=%v, want %v", got, want)
	}
}

func TestPanStateChangedHook(t *testing.T) {
	var p Pan
	var got []StateTransition
	p.OnStateChanged = func(old, new State) {
		got = append(got, StateTransition{old, new})
	}
	p.Update(queue{
		press(1, f32.Pt(0, 0), 0),
		drag(1, f32.Pt(0, 10), 10*time.Millisecond),
	})
	want := []StateTransition{
		{StatePossible, StateBegan},
		{StateBegan, StateChanged},
	}
	if !transitionsEqual(got, want) {
		t.Errorf("hook transitions=%v, want %v", got, want)
	}
}
