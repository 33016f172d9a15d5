// Package clip provides float-coordinate clip shapes. The panel moves at
// sub-pixel positions while it animates between detents, so its chrome is
// built from paths instead of image.Rectangle-based clips.
package clip

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

type FRect struct {
	Min f32.Point
	Max f32.Point
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p)
	return p.End()
}

func (r FRect) IntoPath(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Min)
}

// intoPathR adds the rectangle with reversed winding, for cutting holes.
func (r FRect) intoPathR(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// FRRect is a rectangle with rounded corners. Corner radii follow the
// compass naming of gioui's clip.RRect.
type FRRect struct {
	Rect           FRect
	SE, SW, NW, NE float32
}

func (r FRRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)

	min, max := r.Rect.Min, r.Rect.Max
	p.MoveTo(f32.Pt(min.X+r.NW, min.Y))
	p.LineTo(f32.Pt(max.X-r.NE, min.Y))
	p.QuadTo(f32.Pt(max.X, min.Y), f32.Pt(max.X, min.Y+r.NE))
	p.LineTo(f32.Pt(max.X, max.Y-r.SE))
	p.QuadTo(max, f32.Pt(max.X-r.SE, max.Y))
	p.LineTo(f32.Pt(min.X+r.SW, max.Y))
	p.QuadTo(f32.Pt(min.X, max.Y), f32.Pt(min.X, max.Y-r.SW))
	p.LineTo(f32.Pt(min.X, min.Y+r.NW))
	p.QuadTo(min, f32.Pt(min.X+r.NW, min.Y))
	p.Close()

	return p.End()
}

func (r FRRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// RectangularOutline is a rectangle-shaped border of uniform width, drawn
// inward from Rect's edges.
type RectangularOutline struct {
	Rect  FRect
	Width float32
}

func (out RectangularOutline) Op(ops *op.Ops) clip.Op {
	var p clip.Path
	p.Begin(ops)
	out.Rect.IntoPath(&p)
	inner := FRect{
		Min: f32.Pt(out.Rect.Min.X+out.Width, out.Rect.Min.Y+out.Width),
		Max: f32.Pt(out.Rect.Max.X-out.Width, out.Rect.Max.Y-out.Width),
	}
	inner.intoPathR(&p)
	p.Close()

	return clip.Outline{Path: p.End()}.Op()
}
