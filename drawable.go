package dragarea

import "sync"

// Drawable is an object that can be placed on an [Area] and dragged around.
// C is the drawing context the host passes to Draw.
type Drawable[C any] interface {
	// Draw renders the object with its origin at (x, y) in surface
	// coordinates. A non-nil error aborts the frame.
	Draw(ctx C, x, y float64) error
	// Limits reports how far the object extends from its draw origin.
	Limits() Limits
}

// Container is implemented by drawables with a custom hit region. Given a
// point relative to the draw origin, Contains reports whether it should act
// as a handle for dragging the object. Without it the box from Limits is
// used.
type Container interface {
	Contains(x, y float64) bool
}

// Scroller is implemented by drawables that control where panning of a
// scrollable area may start. Without it, panning is allowed wherever the
// object does not contain the point.
type Scroller interface {
	CanScroll(x, y float64) bool
}

// Retainer is implemented by drawables that remove themselves lazily. Retain
// is only called during [Area.Render]; an object reporting false is removed
// before that frame is drawn.
type Retainer interface {
	Retain() bool
}

// DoubleClicker receives primary-button double clicks on points it contains.
type DoubleClicker interface {
	OnDoubleClick()
}

// MiddleClicker receives middle-button clicks on points it contains.
type MiddleClicker interface {
	OnMiddleClick()
}

// RightClicker receives secondary-button clicks on points it contains.
type RightClicker interface {
	OnRightClick()
}

func containsPoint[C any](d Drawable[C], x, y float64) bool {
	if c, ok := d.(Container); ok {
		return c.Contains(x, y)
	}
	return d.Limits().Contains(x, y)
}

func canScrollAt[C any](d Drawable[C], x, y float64) bool {
	if s, ok := d.(Scroller); ok {
		return s.CanScroll(x, y)
	}
	return !containsPoint(d, x, y)
}

func retained[C any](d Drawable[C]) bool {
	if r, ok := d.(Retainer); ok {
		return r.Retain()
	}
	return true
}

// Shared wraps a drawable the caller keeps mutating after handing it to an
// Area. Every method the Area calls holds a read lock; Update holds the
// write lock. Shared implements every optional capability and falls back to
// the defaults when D does not.
//
// Update must not be called from inside one of D's own methods while the
// Area is using it (for example from Retain); the lock is not reentrant.
type Shared[C any, D Drawable[C]] struct {
	mu sync.RWMutex
	d  D
}

// NewShared wraps d for shared mutable ownership.
func NewShared[C any, D Drawable[C]](d D) *Shared[C, D] {
	return &Shared[C, D]{d: d}
}

// Update runs fn with exclusive access to the wrapped drawable.
func (s *Shared[C, D]) Update(fn func(d D)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.d)
}

// View runs fn with shared read access to the wrapped drawable.
func (s *Shared[C, D]) View(fn func(d D)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.d)
}

func (s *Shared[C, D]) Draw(ctx C, x, y float64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Draw(ctx, x, y)
}

func (s *Shared[C, D]) Limits() Limits {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Limits()
}

func (s *Shared[C, D]) Contains(x, y float64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsPoint[C](s.d, x, y)
}

func (s *Shared[C, D]) CanScroll(x, y float64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return canScrollAt[C](s.d, x, y)
}

func (s *Shared[C, D]) Retain() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return retained[C](s.d)
}

func (s *Shared[C, D]) OnDoubleClick() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := any(s.d).(DoubleClicker); ok {
		h.OnDoubleClick()
	}
}

func (s *Shared[C, D]) OnMiddleClick() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := any(s.d).(MiddleClicker); ok {
		h.OnMiddleClick()
	}
}

func (s *Shared[C, D]) OnRightClick() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := any(s.d).(RightClicker); ok {
		h.OnRightClick()
	}
}
