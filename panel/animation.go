package panel

import (
	"time"

	"gioui.org/op"
	"golang.org/x/exp/constraints"
	"honnef.co/go/stuff/math/mathutil"

	"github.com/mttvll/Aiolos/layout"
)

type easingFunction func(float64) float64

func easeOutCubic(r float64) float64 {
	r = 1 - r
	return 1 - r*r*r
}

// snapAnimation interpolates the panel height towards a detent. It requests
// new frames while running and settles on the end value.
type snapAnimation[T constraints.Float] struct {
	from, to  T
	startedAt time.Time
	duration  time.Duration
	ease      easingFunction
	active    bool
}

func (a *snapAnimation[T]) start(gtx layout.Context, from, to T, d time.Duration, ease easingFunction) {
	a.from = from
	a.to = to
	a.startedAt = gtx.Now
	a.duration = d
	a.ease = ease
	a.active = true
	op.InvalidateOp{}.Add(gtx.Ops)
}

func (a *snapAnimation[T]) value(gtx layout.Context) T {
	if !a.active {
		return a.to
	}
	d := gtx.Now.Sub(a.startedAt)
	if d >= a.duration {
		a.active = false
		return a.to
	}
	op.InvalidateOp{}.Add(gtx.Ops)
	return mathutil.Lerp(a.from, a.to, a.ease(float64(d)/float64(a.duration)))
}

func (a *snapAnimation[T]) cancel() {
	a.active = false
}
