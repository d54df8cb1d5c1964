package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/dragarea"
)

// Color is an RGBA color with components in [0, 1] and straight alpha.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// toRGBA converts to premultiplied 8-bit RGBA, the form Ebiten expects.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rectangle is a filled rectangle drawn from its top-left corner. The
// embedded Callbacks let callers attach click handlers and remove it.
type Rectangle struct {
	dragarea.Callbacks
	Width, Height float64
	Fill          Color
}

// NewRectangle returns a filled rectangle of the given size.
func NewRectangle(width, height float64, fill Color) *Rectangle {
	return &Rectangle{Width: width, Height: height, Fill: fill}
}

func (r *Rectangle) Draw(dst *ebiten.Image, x, y float64) error {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(r.Width), float32(r.Height), r.Fill.toRGBA(), true)
	return nil
}

func (r *Rectangle) Limits() dragarea.Limits {
	return r.hit().Limits()
}

func (r *Rectangle) Contains(x, y float64) bool {
	return r.hit().Contains(x, y)
}

func (r *Rectangle) hit() dragarea.HitRect {
	return dragarea.HitRect{Width: r.Width, Height: r.Height}
}

// Circle is a filled circle centered on its draw origin.
type Circle struct {
	dragarea.Callbacks
	Radius float64
	Fill   Color
}

// NewCircle returns a filled circle of the given radius.
func NewCircle(radius float64, fill Color) *Circle {
	return &Circle{Radius: radius, Fill: fill}
}

func (c *Circle) Draw(dst *ebiten.Image, x, y float64) error {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(c.Radius), c.Fill.toRGBA(), true)
	return nil
}

func (c *Circle) Limits() dragarea.Limits {
	return c.hit().Limits()
}

func (c *Circle) Contains(x, y float64) bool {
	return c.hit().Contains(x, y)
}

func (c *Circle) hit() dragarea.HitCircle {
	return dragarea.HitCircle{Radius: c.Radius}
}
