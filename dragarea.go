package dragarea

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Limits describes how far a drawable extends from the origin it is drawn
// at. All four values are magnitudes: a circle of radius 50 centered on its
// origin reports {50, 50, 50, 50}. Negative values are treated as 0.
type Limits struct {
	NegX, PosX, NegY, PosY float64
}

// normalized clamps negative components to 0.
func (l Limits) normalized() Limits {
	return Limits{
		NegX: max(l.NegX, 0),
		PosX: max(l.PosX, 0),
		NegY: max(l.NegY, 0),
		PosY: max(l.PosY, 0),
	}
}

func (l Limits) hasNegative() bool {
	return l.NegX < 0 || l.PosX < 0 || l.NegY < 0 || l.PosY < 0
}

// Contains reports whether (x, y), relative to the draw origin, lies inside
// the box described by l. Points on the edge are considered inside.
func (l Limits) Contains(x, y float64) bool {
	l = l.normalized()
	return x >= -l.NegX && x <= l.PosX &&
		y >= -l.NegY && y <= l.PosY
}

// Button identifies the pointer button of a click.
type Button uint8

const (
	ButtonPrimary   Button = iota // left button; dispatched on double click
	ButtonMiddle                  // middle button (scroll wheel click)
	ButtonSecondary               // right button
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventDragStart   EventType = iota // a gesture began on an object
	EventDrag                         // the dragged object moved
	EventDragEnd                      // the gesture that dragged an object ended
	EventPanStart                     // a gesture began panning the area
	EventPan                          // the in-flight pan offset changed
	EventPanEnd                       // the pan offset was committed
	EventDoubleClick                  // an object received a primary double click
	EventMiddleClick                  // an object received a middle click
	EventRightClick                   // an object received a secondary click
)
