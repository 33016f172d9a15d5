// Package gesture implements pan recognition for sliding-panel UIs: a
// touch-driven recognizer that starts tracking on the first sample, without a
// recognition delay, and a pointer-scroll recognizer that adapts
// trackpad/mouse wheel input to the same translation/velocity contract. Both
// share a Tracker, which decides exactly once per gesture whether movement is
// a vertical pan or a horizontal motion that should cancel the gesture.
package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
)

// The threshold was tuned against real devices; don't assume it holds for
// other coordinate scales or DPI settings.
const panThreshold = 5.0

// Scroll sequences have no release event, so they end after a quiet period.
const scrollEndTimeout = 150 * time.Millisecond

// State is the lifecycle state of a recognizer.
type State uint8

const (
	// StatePossible is the resting state, before any input has arrived.
	StatePossible State = iota
	// StateBegan is reported when the first sample of a gesture arrives.
	StateBegan
	// StateChanged is reported for every subsequent sample.
	StateChanged
	// StateEnded is reported when the pointer lifts.
	StateEnded
	// StateCancelled is reported when the gesture is abandoned, either by
	// the platform or because movement was classified as horizontal.
	StateCancelled
	// StateFailed is reported when input can never form a valid gesture,
	// such as a second concurrent touch.
	StateFailed
)

// Done reports whether s is terminal. A recognizer in a terminal state
// ignores input until Reset is called.
func (s State) Done() bool {
	return s == StateEnded || s == StateCancelled || s == StateFailed
}

func (s State) String() string {
	switch s {
	case StatePossible:
		return "possible"
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateTransition records a single state change of a recognizer. Repeated
// samples report Changed→Changed transitions, one per sample.
type StateTransition struct {
	From, To State
}

// StartModeKind describes the spatial context a gesture started in.
type StartModeKind uint8

const (
	// StartModeFixedArea means the gesture started over a plain area.
	StartModeFixedArea StartModeKind = iota
	// StartModeScrollableArea means the gesture started over a vertically
	// scrollable area that competes for the drag.
	StartModeScrollableArea
)

// StartMode is set by the consumer when a gesture begins and read back to
// arbitrate between panel drags and a nested scroll area. Recognizers only
// store the value; it does not alter tracking.
type StartMode struct {
	Kind StartModeKind
	// CompetingScroller identifies the scrollable area under the initial
	// sample. Only meaningful for StartModeScrollableArea.
	CompetingScroller event.Tag
}

// Recognizer is the contract shared by the touch and scroll variants.
type Recognizer interface {
	State() State
	DidPan() bool
	StartMode() StartMode
	SetStartMode(StartMode)
	Translation(sp Space) f32.Point
	SetTranslation(v f32.Point, sp Space)
	Velocity(sp Space) f32.Point
	Reset()
}
