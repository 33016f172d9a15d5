package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/x/outlay"
)

// UniformGrid lays out cells of one fixed size in rows and columns. Unlike
// outlay.Grid used directly, callers don't have to translate cell sizes into
// per-axis dimmer callbacks.
type UniformGrid struct {
	Grid       outlay.Grid
	CellWidth  unit.Dp
	CellHeight unit.Dp
}

func (ug UniformGrid) Layout(gtx layout.Context, rows, cols int, cell outlay.Cell) layout.Dimensions {
	w := gtx.Dp(ug.CellWidth)
	h := gtx.Dp(ug.CellHeight)
	dimmer := func(axis layout.Axis, index, constraint int) int {
		if axis == layout.Vertical {
			return h
		}
		return w
	}
	return ug.Grid.Layout(gtx, rows, cols, dimmer, cell)
}
