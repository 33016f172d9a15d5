// Command paneldemo shows the sliding panel over a grid of color swatches.
// The panel hosts a scrollable list; drag the handle or the list, or scroll
// with a trackpad, to move the panel between its detents.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/mttvll/Aiolos/clip"
	"github.com/mttvll/Aiolos/layout"
	"github.com/mttvll/Aiolos/panel"
)

const (
	colorBackground   = 0xFFFFEAFF
	colorSwatchBorder = 0x00000033
	colorRowEven      = 0xFFFFFFFF
	colorRowOdd       = 0xE5E5EAFF
)

const (
	swatchSize = unit.Dp(80)
	rowHeight  = unit.Dp(48)
	numRows    = 40
)

func main() {
	go func() {
		w := app.NewWindow(app.Title("Aiolos"))
		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type demo struct {
	panel panel.Panel
	list  layout.List
	grid  layout.UniformGrid
}

func run(w *app.Window) error {
	d := demo{
		list: layout.List{Axis: layout.Vertical},
		grid: layout.UniformGrid{CellWidth: swatchSize, CellHeight: swatchSize},
	}

	var ops op.Ops
	for {
		e := <-w.Events()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			d.layout(gtx)
			ev.Frame(&ops)
		}
	}
}

func (d *demo) layout(gtx layout.Context) {
	paint.Fill(gtx.Ops, rgba(colorBackground))

	cell := gtx.Dp(swatchSize)
	cols := gtx.Constraints.Max.X / cell
	rows := gtx.Constraints.Max.Y / cell
	if cols > 0 && rows > 0 {
		d.grid.Layout(gtx, rows, cols, func(gtx layout.Context, row, col int) layout.Dimensions {
			inset := float32(gtx.Dp(4))
			sz := gtx.Constraints.Min
			r := clip.FRect{
				Min: f32.Pt(inset, inset),
				Max: f32.Pt(float32(sz.X)-inset, float32(sz.Y)-inset),
			}
			paint.FillShape(gtx.Ops, swatchColor(row, col), r.Op(gtx.Ops))
			paint.FillShape(gtx.Ops, rgba(colorSwatchBorder), clip.RectangularOutline{Rect: r, Width: 1}.Op(gtx.Ops))
			return layout.Dimensions{Size: sz}
		})
	}

	style := panel.Style(&d.panel)
	style.Scroller = &d.list
	style.Layout(gtx, d.content)
}

func (d *demo) content(gtx layout.Context) layout.Dimensions {
	return d.list.Layout(gtx, numRows, func(gtx layout.Context, i int) layout.Dimensions {
		sz := image.Pt(gtx.Constraints.Max.X, gtx.Dp(rowHeight))
		c := rgba(colorRowEven)
		if i%2 == 1 {
			c = rgba(colorRowOdd)
		}
		inset := float32(gtx.Dp(2))
		r := clip.FRect{
			Min: f32.Pt(inset, inset),
			Max: f32.Pt(float32(sz.X)-inset, float32(sz.Y)-inset),
		}
		paint.FillShape(gtx.Ops, c, r.Op(gtx.Ops))
		return layout.Dimensions{Size: sz}
	})
}

func swatchColor(row, col int) color.NRGBA {
	// A stable pseudo-random pastel per cell.
	h := uint32(row*31 + col*17)
	return color.NRGBA{
		R: uint8(160 + (h*37)%80),
		G: uint8(160 + (h*59)%80),
		B: uint8(160 + (h*83)%80),
		A: 0xFF,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}
