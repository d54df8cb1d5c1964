package dragarea

import "iter"

// DrawHook is called before or after each frame with the raw drawing context
// and the surface size passed to [Area.Render].
type DrawHook[C any] func(ctx C, width, height int)

// Area is the top-level object that owns the placed drawables, the gesture
// state, and the pan offset. All methods must be called from the goroutine
// delivering UI events.
type Area[C any] struct {
	reg     registry[C]
	pending []Entry[C] // added from inside a sweep; appended once it finishes

	width, height int
	scrollable    bool

	// Gesture state
	state gestureState
	drag  dragInfo

	// Pan state
	translate     Vec2
	dragTranslate Vec2
	scroll        *scrollAnim

	preDraw  DrawHook[C]
	postDraw DrawHook[C]

	invalidator func()
	dirty       bool

	handlers handlerRegistry
	store    EventStore
	debug    bool
}

// New creates a non-scrollable area of the given size. Dragged objects are
// clamped so their limits stay inside the surface.
func New[C any](width, height int) *Area[C] {
	return &Area[C]{
		width:  width,
		height: height,
		dirty:  true,
	}
}

// NewScrollable creates a scrollable area of the given size. Gestures that
// start where every object allows scrolling pan the whole area, and dragged
// objects are not clamped.
func NewScrollable[C any](width, height int) *Area[C] {
	a := New[C](width, height)
	a.scrollable = true
	return a
}

// Add places d at (x, y). It becomes the topmost object.
func (a *Area[C]) Add(d Drawable[C], x, y float64) {
	if a.reg.sweeping {
		a.debugCheckReentrant("Add")
		a.pending = append(a.pending, Entry[C]{Drawable: d, X: x, Y: y})
		return
	}
	a.reg.push(d, x, y)
	a.invalidate()
}

// Len returns the number of placed objects.
func (a *Area[C]) Len() int {
	return len(a.reg.entries)
}

// Entry returns the object at paint-order index i. It panics if i is out of
// range.
func (a *Area[C]) Entry(i int) Entry[C] {
	return a.reg.entries[i]
}

// All iterates placed objects in paint order, bottom first.
func (a *Area[C]) All() iter.Seq2[int, Entry[C]] {
	return a.reg.all()
}

// Backward iterates placed objects in reverse paint order, topmost first.
func (a *Area[C]) Backward() iter.Seq2[int, Entry[C]] {
	return a.reg.backward()
}

// Size returns the surface size used for clamping.
func (a *Area[C]) Size() (width, height int) {
	return a.width, a.height
}

// SetSize changes the surface size used for clamping. Objects already placed
// are not moved.
func (a *Area[C]) SetSize(width, height int) {
	if width == a.width && height == a.height {
		return
	}
	a.width, a.height = width, height
	a.invalidate()
}

// SetPreDrawHook sets a function called at the start of every Render.
func (a *Area[C]) SetPreDrawHook(fn DrawHook[C]) {
	a.preDraw = fn
}

// UnsetPreDrawHook removes the pre-draw hook.
func (a *Area[C]) UnsetPreDrawHook() {
	a.preDraw = nil
}

// SetPostDrawHook sets a function called after every successfully drawn
// frame.
func (a *Area[C]) SetPostDrawHook(fn DrawHook[C]) {
	a.postDraw = fn
}

// UnsetPostDrawHook removes the post-draw hook.
func (a *Area[C]) UnsetPostDrawHook() {
	a.postDraw = nil
}

// SetInvalidator sets the function called whenever the next frame would
// differ from the last one. Hosts use it to schedule a repaint; coalescing
// repeated requests is up to them.
func (a *Area[C]) SetInvalidator(fn func()) {
	a.invalidator = fn
}

// NeedsRedraw reports whether anything changed since the last Render.
func (a *Area[C]) NeedsRedraw() bool {
	return a.dirty
}

func (a *Area[C]) invalidate() {
	a.dirty = true
	if a.invalidator != nil {
		a.invalidator()
	}
}
