package dragarea

import (
	"errors"
	"testing"
)

// canvas is a fake drawing context that records every draw call.
type canvas struct {
	calls []drawCall
}

type drawCall struct {
	name string
	x, y float64
}

// square is a solid 100x100 square drawn from its top-left corner.
type square struct {
	name    string
	err     error
	keep    bool
	doubles int
	middles int
	rights  int
}

func newSquare(name string) *square {
	return &square{name: name, keep: true}
}

func (s *square) Draw(c *canvas, x, y float64) error {
	if s.err != nil {
		return s.err
	}
	c.calls = append(c.calls, drawCall{name: s.name, x: x, y: y})
	return nil
}

func (s *square) Limits() Limits { return Limits{NegX: 0, PosX: 100, NegY: 0, PosY: 100} }
func (s *square) Retain() bool { return s.keep }
func (s *square) OnDoubleClick() { s.doubles++ }
func (s *square) OnMiddleClick() { s.middles++; s.keep = false }
func (s *square) OnRightClick() { s.rights++ }

// circle is centered on its draw origin.
type circle struct {
	name   string
	radius float64
}

func (c *circle) Draw(cv *canvas, x, y float64) error {
	cv.calls = append(cv.calls, drawCall{name: c.name, x: x, y: y})
	return nil
}

func (c *circle) Limits() Limits {
	return Limits{NegX: c.radius, PosX: c.radius, NegY: c.radius, PosY: c.radius}
}

func (c *circle) Contains(x, y float64) bool {
	return HitCircle{Radius: c.radius}.Contains(x, y)
}

// plain only implements the required methods.
type plain struct{ l Limits }

func (p plain) Draw(*canvas, float64, float64) error { return nil }
func (p plain) Limits() Limits { return p.l }

func names(a *Area[*canvas]) []string {
	var out []string
	for _, e := range a.All() {
		switch d := e.Drawable.(type) {
		case *square:
			out = append(out, d.name)
		case *circle:
			out = append(out, d.name)
		default:
			out = append(out, "?")
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	a := New[*canvas](500, 400)
	if w, h := a.Size(); w != 500 || h != 400 {
		t.Errorf("Size() = (%d, %d), want (500, 400)", w, h)
	}
	if a.Scrollable() {
		t.Error("New should not be scrollable")
	}
	if !a.NeedsRedraw() {
		t.Error("a new area should need a first frame")
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestNewScrollable(t *testing.T) {
	a := NewScrollable[*canvas](500, 500)
	if !a.Scrollable() {
		t.Error("NewScrollable should be scrollable")
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	a := New[*canvas](500, 500)
	for _, n := range []string{"a", "b", "c", "d"} {
		a.Add(newSquare(n), 0, 0)
	}
	if got := names(a); !equalStrings(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("order = %v, want [a b c d]", got)
	}
}

func TestAddInvalidates(t *testing.T) {
	a := New[*canvas](500, 500)
	var requests int
	a.SetInvalidator(func() { requests++ })
	a.Add(newSquare("a"), 10, 20)
	if requests != 1 {
		t.Errorf("invalidate requests = %d, want 1", requests)
	}
	e := a.Entry(0)
	if e.X != 10 || e.Y != 20 {
		t.Errorf("entry position = (%v, %v), want (10, 20)", e.X, e.Y)
	}
}

func TestSetSize(t *testing.T) {
	a := New[*canvas](100, 100)
	c := &canvas{}
	if err := a.Render(c, 100, 100); err != nil {
		t.Fatal(err)
	}
	a.SetSize(100, 100)
	if a.NeedsRedraw() {
		t.Error("unchanged size should not invalidate")
	}
	a.SetSize(300, 200)
	if w, h := a.Size(); w != 300 || h != 200 {
		t.Errorf("Size() = (%d, %d), want (300, 200)", w, h)
	}
	if !a.NeedsRedraw() {
		t.Error("resize should invalidate")
	}
}

func TestBackwardIteratesTopmostFirst(t *testing.T) {
	a := New[*canvas](500, 500)
	a.Add(newSquare("a"), 0, 0)
	a.Add(newSquare("b"), 0, 0)
	a.Add(newSquare("c"), 0, 0)

	var got []int
	for i := range a.Backward() {
		got = append(got, i)
	}
	if len(got) != 3 || got[0] != 2 || got[2] != 0 {
		t.Errorf("Backward indices = %v, want [2 1 0]", got)
	}

	// Iterators are restartable and stop early.
	count := 0
	for range a.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break visited %d, want 2", count)
	}
	count = 0
	for range a.All() {
		count++
	}
	if count != 3 {
		t.Errorf("second pass visited %d, want 3", count)
	}
}

func TestDrawErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := error(&DrawError{Index: 3, Err: base})
	if !errors.Is(err, base) {
		t.Error("DrawError should unwrap to its cause")
	}
	var de *DrawError
	if !errors.As(err, &de) || de.Index != 3 {
		t.Errorf("errors.As = %v, want index 3", de)
	}
	if got, want := err.Error(), "draw entry 3: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
