// Package panel implements a bottom-anchored sliding panel that rests at
// detents and is resized by vertical drags or trackpad scrolls. It is the
// consumer of the gesture package's recognizers: it reads their translations,
// consumes them, snaps between detents using the estimated velocity, and
// arbitrates drags against a vertically scrollable content area.
package panel

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/eventx"

	"github.com/mttvll/Aiolos/clip"
	"github.com/mttvll/Aiolos/gesture"
	"github.com/mttvll/Aiolos/layout"
)

// Mode is a detent the panel rests at.
type Mode uint8

const (
	Collapsed Mode = iota
	Expanded
	FullHeight
)

const (
	// A release faster than this flings the panel to the next detent in the
	// fling's direction instead of the nearest one.
	flingVelocity = 300.0
	snapDuration  = 250 * time.Millisecond
)

// Panel holds the retained state of a sliding panel.
type Panel struct {
	// Mode is the detent the panel rests at, or will rest at once the
	// current snap animation finishes.
	Mode Mode

	pan    gesture.Pan
	scroll gesture.Scroll

	// dragHeight is the panel height while a drag is live; it overrides the
	// detent height and the animation.
	dragging   bool
	dragHeight float32
	anim       snapAnimation[float32]
}

// Dragging reports whether a drag is currently resizing the panel.
func (p *Panel) Dragging() bool {
	return p.dragging
}

// PanelStyle configures the presentation of a panel.
type PanelStyle struct {
	Panel *Panel

	Background  color.NRGBA
	HandleColor color.NRGBA

	// Heights of the lower two detents. FullHeight fills the constraints.
	CollapsedHeight unit.Dp
	ExpandedHeight  unit.Dp

	// HandleHeight is the grab strip above the content.
	HandleHeight unit.Dp

	// Corner is the radius of the panel's top corners.
	Corner unit.Dp

	// Scroller is the content's vertically scrollable list, if it has one.
	// A gesture starting over the content yields to the scroller while it is
	// scrolled away from the top.
	Scroller *layout.List
}

// Style configures the presentation of a panel with defaults.
func Style(p *Panel) PanelStyle {
	return PanelStyle{
		Panel:           p,
		Background:      color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF},
		HandleColor:     color.NRGBA{R: 0xC7, G: 0xC7, B: 0xCC, A: 0xFF},
		CollapsedHeight: 120,
		ExpandedHeight:  320,
		HandleHeight:    20,
		Corner:          12,
	}
}

// detents are the panel's resting heights in pixels.
type detents struct {
	collapsed, expanded, full float32
}

func (d detents) of(m Mode) float32 {
	switch m {
	case Collapsed:
		return d.collapsed
	case Expanded:
		return d.expanded
	default:
		return d.full
	}
}

// above returns the lowest detent strictly above height, saturating at
// FullHeight.
func (d detents) above(height float32) Mode {
	switch {
	case height < d.collapsed:
		return Collapsed
	case height < d.expanded:
		return Expanded
	default:
		return FullHeight
	}
}

// below returns the highest detent strictly below height, saturating at
// Collapsed.
func (d detents) below(height float32) Mode {
	switch {
	case height > d.full:
		return FullHeight
	case height > d.expanded:
		return Expanded
	default:
		return Collapsed
	}
}

func (d detents) nearest(height float32) Mode {
	mode := Collapsed
	best := abs32(height - d.collapsed)
	if v := abs32(height - d.expanded); v < best {
		mode, best = Expanded, v
	}
	if v := abs32(height - d.full); v < best {
		mode = FullHeight
	}
	return mode
}

// snap picks the detent a drag released at height with vertical velocity vy
// should settle at. Negative vy points up, towards taller detents.
func (d detents) snap(height, vy float32) Mode {
	switch {
	case vy <= -flingVelocity:
		return d.above(height)
	case vy >= flingVelocity:
		return d.below(height)
	default:
		return d.nearest(height)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p *Panel) height(gtx layout.Context, d detents) float32 {
	if p.dragging {
		return p.dragHeight
	}
	if p.anim.active {
		return p.anim.value(gtx)
	}
	return d.of(p.Mode)
}

// Layout updates the panel from this frame's events and draws it anchored to
// the bottom of the constraints, with content filling the area below the
// grab handle.
func (s PanelStyle) Layout(gtx layout.Context, content layout.Widget) layout.Dimensions {
	p := s.Panel
	d := detents{
		collapsed: float32(gtx.Dp(s.CollapsedHeight)),
		expanded:  float32(gtx.Dp(s.ExpandedHeight)),
		full:      float32(gtx.Constraints.Max.Y),
	}

	panTrans := p.pan.Update(gtx)
	scrollTrans := p.scroll.Update(gtx)
	s.apply(gtx, &p.pan, panTrans, d)
	s.apply(gtx, &p.scroll, scrollTrans, d)

	h := clamp32(p.height(gtx, d), 0, d.full)
	height := int(math.Round(float64(h)))
	width := gtx.Constraints.Max.X
	size := image.Pt(width, height)

	// The panel sits at sub-pixel positions while animating, so it is
	// offset and clipped with float geometry.
	corner := float32(gtx.Dp(s.Corner))
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(0, d.full-h))).Push(gtx.Ops).Pop()
	shape := clip.FRRect{
		Rect: clip.FRect{Max: f32.Pt(float32(width), h)},
		NW:   corner,
		NE:   corner,
	}
	defer shape.Op(gtx.Ops).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, s.Background)

	// The recognizers cover the whole panel, handle and content alike, and
	// pass events on so nested widgets still receive them.
	pass := pointer.PassOp{}.Push(gtx.Ops)
	p.pan.Add(gtx.Ops)
	p.scroll.Add(gtx.Ops)
	pass.Pop()

	s.layoutHandle(gtx, size.X)

	// The content subtree is spied on: input it received this frame tells us
	// the gesture started over the content, not the handle.
	handlePx := gtx.Dp(s.HandleHeight)
	spy, cgtx := eventx.Enspy(gtx)
	cgtx.Constraints = layout.Exact(image.Pt(size.X, max(0, height-handlePx)))
	trans := op.Offset(image.Pt(0, handlePx)).Push(gtx.Ops)
	content(cgtx)
	trans.Pop()

	if beganThisFrame(panTrans) || beganThisFrame(scrollTrans) {
		if s.Scroller != nil && sawPointerInput(spy) {
			m := gesture.StartMode{
				Kind:              gesture.StartModeScrollableArea,
				CompetingScroller: s.Scroller,
			}
			if beganThisFrame(panTrans) {
				p.pan.SetStartMode(m)
			}
			if beganThisFrame(scrollTrans) {
				p.scroll.SetStartMode(m)
			}
		}
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (s PanelStyle) apply(gtx layout.Context, rec gesture.Recognizer, trans []gesture.StateTransition, d detents) {
	p := s.Panel
	for _, tr := range trans {
		switch tr.To {
		case gesture.StateBegan:
			h := p.height(gtx, d)
			p.anim.cancel()
			p.dragHeight = h
			p.dragging = true
		case gesture.StateChanged:
			delta := rec.Translation(gesture.Space{})
			rec.SetTranslation(f32.Point{}, gesture.Space{})
			if s.yieldToScroller(rec) {
				continue
			}
			// Dragging up makes the panel taller.
			p.dragHeight = clamp32(p.dragHeight-delta.Y, d.collapsed, d.full)
		case gesture.StateEnded:
			vy := rec.Velocity(gesture.Space{}).Y
			h := p.height(gtx, d)
			p.Mode = d.snap(h, vy)
			p.dragging = false
			p.anim.start(gtx, h, d.of(p.Mode), snapDuration, easeOutCubic)
			rec.Reset()
		case gesture.StateCancelled, gesture.StateFailed:
			h := p.height(gtx, d)
			p.dragging = false
			p.anim.start(gtx, h, d.of(p.Mode), snapDuration, easeOutCubic)
			rec.Reset()
		}
	}
}

// yieldToScroller reports whether a change should scroll the competing list
// instead of resizing the panel. The list wins while it is scrolled away
// from the top.
func (s PanelStyle) yieldToScroller(rec gesture.Recognizer) bool {
	m := rec.StartMode()
	if m.Kind != gesture.StartModeScrollableArea || s.Scroller == nil {
		return false
	}
	pos := s.Scroller.Position
	return pos.First > 0 || pos.Offset > 0
}

func (s PanelStyle) layoutHandle(gtx layout.Context, width int) {
	w := float32(gtx.Dp(36))
	h := float32(gtx.Dp(5))
	top := (float32(gtx.Dp(s.HandleHeight)) - h) / 2
	if top < 0 {
		top = 0
	}
	cx := float32(width) / 2
	rr := clip.FRRect{
		Rect: clip.FRect{Min: f32.Pt(cx-w/2, top), Max: f32.Pt(cx+w/2, top+h)},
		SE:   h / 2, SW: h / 2, NW: h / 2, NE: h / 2,
	}
	paint.FillShape(gtx.Ops, s.HandleColor, rr.Op(gtx.Ops))
}

func beganThisFrame(trans []gesture.StateTransition) bool {
	for _, tr := range trans {
		if tr.To == gesture.StateBegan {
			return true
		}
	}
	return false
}

func sawPointerInput(spy *eventx.Spy) bool {
	for _, grp := range spy.AllEvents() {
		for _, ev := range grp.Items {
			if e, ok := ev.(pointer.Event); ok {
				switch e.Kind {
				case pointer.Press, pointer.Scroll:
					return true
				}
			}
		}
	}
	return false
}
