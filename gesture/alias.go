package gesture

import "gioui.org/gesture"

type Axis = gesture.Axis

const (
	Horizontal Axis = gesture.Horizontal
	Vertical   Axis = gesture.Vertical
)
