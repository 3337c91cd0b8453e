package core

import "time"

// Rect is an axis-aligned bounding box in cell units, half-open on both axes
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the first column past the rectangle
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports AABB overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Transform is satisfied by anything with a position and extent
type Transform interface {
	Bounds() Rect
}

// Updatable entities advance their own timers by the elapsed frame delta
type Updatable interface {
	Update(delta time.Duration)
}

// Drawable entities paint themselves into a frame
type Drawable interface {
	Draw(f *Frame)
}

// Collides is the one collision predicate shared by every entity
func Collides(a, b Transform) bool {
	return a.Bounds().Intersects(b.Bounds())
}
