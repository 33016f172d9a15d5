package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Constraints = layout.Constraints
type Widget = layout.Widget
type Flex = layout.Flex
type FlexChild = layout.FlexChild
type Axis = layout.Axis
type Inset = layout.Inset
type List = layout.List
type Position = layout.Position
type Spacer = layout.Spacer

var Exact = layout.Exact
var NewContext = layout.NewContext
var Rigid = layout.Rigid
var Flexed = layout.Flexed
var UniformInset = layout.UniformInset

const (
	Horizontal Axis = layout.Horizontal
	Vertical   Axis = layout.Vertical
)
