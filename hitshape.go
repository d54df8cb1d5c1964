package dragarea

// HitShape is a hit region relative to a drawable's origin. Drawables
// typically implement [Container] by delegating to one.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in origin-relative
// coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Limits returns the extent of the rectangle from the origin.
func (r HitRect) Limits() Limits {
	return Limits{NegX: -r.X, PosX: r.X + r.Width, NegY: -r.Y, PosY: r.Y + r.Height}.normalized()
}

// HitCircle is a circular hit area in origin-relative coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Limits returns the extent of the circle's bounding box from the origin.
func (c HitCircle) Limits() Limits {
	return Limits{
		NegX: c.Radius - c.CenterX,
		PosX: c.CenterX + c.Radius,
		NegY: c.Radius - c.CenterY,
		PosY: c.CenterY + c.Radius,
	}.normalized()
}

// HitPolygon is a convex polygon hit area in origin-relative coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Limits returns the extent of the polygon's bounding box from the origin.
func (p HitPolygon) Limits() Limits {
	if len(p.Points) == 0 {
		return Limits{}
	}
	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	return Limits{NegX: -minX, PosX: maxX, NegY: -minY, PosY: maxY}.normalized()
}
