package shapes

import (
	"fmt"
	"math/bits"
)

// Rect is an axis-aligned rectangle stored as its four edge coordinates
// in a y-up coordinate system. A valid Rect always has Left <= Right and
// Bottom <= Top; the constructors reject anything else.
type Rect struct {
	Left, Right, Bottom, Top float32
}

// LRBT creates a rectangle from explicit edge coordinates.
// It returns ErrInvalidRect when the edges are crossed.
func LRBT(left, right, bottom, top float32) (Rect, error) {
	if left > right {
		return Rect{}, fmt.Errorf("%w: left %g exceeds right %g", ErrInvalidRect, left, right)
	}
	if bottom > top {
		return Rect{}, fmt.Errorf("%w: bottom %g exceeds top %g", ErrInvalidRect, bottom, top)
	}
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}, nil
}

// LBWH creates a rectangle from its bottom-left corner and size.
// Negative sizes produce crossed edges and are rejected.
func LBWH(left, bottom, width, height float32) (Rect, error) {
	return LRBT(left, left+width, bottom, bottom+height)
}

// XYWH creates a rectangle from its center point and size.
func XYWH(x, y, width, height float32) (Rect, error) {
	return LRBT(x-width/2, x+width/2, y-height/2, y+height/2)
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Top - r.Bottom }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float32 { return (r.Left + r.Right) / 2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float32 { return (r.Bottom + r.Top) / 2 }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Contains returns true if the point lies inside the rectangle.
// Points on the left and bottom edges are inside, points on the right
// and top edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Bottom && p.Y < r.Top
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Bottom < other.Top && r.Top > other.Bottom
}

// Bound is a named constraint handed to NewRect. Each axis needs exactly
// two independent constraints, for example Left plus Width, or CenterX
// plus Right.
type Bound func(*boundSet)

type boundSet struct {
	set                      uint8
	left, right, bottom, top float32
	width, height            float32
	centerX, centerY         float32
}

const (
	boundLeft uint8 = 1 << iota
	boundRight
	boundWidth
	boundCenterX
	boundBottom
	boundTop
	boundHeight
	boundCenterY
)

// Left constrains the left edge.
func Left(v float32) Bound {
	return func(s *boundSet) { s.left = v; s.set |= boundLeft }
}

// Right constrains the right edge.
func Right(v float32) Bound {
	return func(s *boundSet) { s.right = v; s.set |= boundRight }
}

// Bottom constrains the bottom edge.
func Bottom(v float32) Bound {
	return func(s *boundSet) { s.bottom = v; s.set |= boundBottom }
}

// Top constrains the top edge.
func Top(v float32) Bound {
	return func(s *boundSet) { s.top = v; s.set |= boundTop }
}

// Width constrains the horizontal extent.
func Width(v float32) Bound {
	return func(s *boundSet) { s.width = v; s.set |= boundWidth }
}

// Height constrains the vertical extent.
func Height(v float32) Bound {
	return func(s *boundSet) { s.height = v; s.set |= boundHeight }
}

// CenterX constrains the x coordinate of the center.
func CenterX(v float32) Bound {
	return func(s *boundSet) { s.centerX = v; s.set |= boundCenterX }
}

// CenterY constrains the y coordinate of the center.
func CenterY(v float32) Bound {
	return func(s *boundSet) { s.centerY = v; s.set |= boundCenterY }
}

// NewRect creates a rectangle from named bounds:
//
//	r, err := shapes.NewRect(shapes.CenterX(100), shapes.CenterY(50),
//	    shapes.Width(80), shapes.Height(20))
//
// Underdetermined or overdetermined axes are rejected with
// ErrInvalidRect, as are crossed edges.
func NewRect(bounds ...Bound) (Rect, error) {
	var s boundSet
	for _, b := range bounds {
		b(&s)
	}
	left, right, err := resolveAxis("horizontal", s.set&(boundLeft|boundRight|boundWidth|boundCenterX),
		boundLeft, boundRight, boundWidth, boundCenterX,
		s.left, s.right, s.width, s.centerX)
	if err != nil {
		return Rect{}, err
	}
	bottom, top, err := resolveAxis("vertical", s.set&(boundBottom|boundTop|boundHeight|boundCenterY),
		boundBottom, boundTop, boundHeight, boundCenterY,
		s.bottom, s.top, s.height, s.centerY)
	if err != nil {
		return Rect{}, err
	}
	return LRBT(left, right, bottom, top)
}

// resolveAxis derives the low and high edge of one axis from exactly two
// of its four possible constraints.
func resolveAxis(axis string, set, loBit, hiBit, sizeBit, centerBit uint8,
	lo, hi, size, center float32) (float32, float32, error) {

	switch set {
	case loBit | hiBit:
		return lo, hi, nil
	case loBit | sizeBit:
		return lo, lo + size, nil
	case hiBit | sizeBit:
		return hi - size, hi, nil
	case centerBit | sizeBit:
		return center - size/2, center + size/2, nil
	case loBit | centerBit:
		return lo, 2*center - lo, nil
	case hiBit | centerBit:
		return 2*center - hi, hi, nil
	default:
		if bits.OnesCount8(set) < 2 {
			return 0, 0, fmt.Errorf("%w: %s bounds underdetermined", ErrInvalidRect, axis)
		}
		return 0, 0, fmt.Errorf("%w: %s bounds overdetermined", ErrInvalidRect, axis)
	}
}
