package geom

// Rect is an axis-aligned rectangle spanning [Min, Max).
type Rect struct {
	Min, Max Vec2
}

// R constructs a rectangle from its corner coordinates.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: Vec2{X: x0, Y: y0}, Max: Vec2{X: x1, Y: y1}}
}

// W returns the rectangle's width.
func (r Rect) W() float32 {
	return r.Max.X - r.Min.X
}

// H returns the rectangle's height.
func (r Rect) H() float32 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether the two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}
