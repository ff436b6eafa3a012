// Package earclip triangulates simple polygons by ear clipping. The
// triangulation introduces no new vertices: a polygon with n boundary
// points always splits into exactly n-2 triangles drawn from those
// points.
package earclip

import (
	"errors"
	"fmt"
)

// ErrInvalidPolygon reports input that cannot be triangulated, either too
// few points or a boundary no ear can be clipped from, such as a
// self-intersecting one.
var ErrInvalidPolygon = errors.New("earclip: invalid polygon")

// Point is a polygon vertex.
type Point struct {
	X, Y float64
}

// Triangle is one triangle of a triangulation.
type Triangle [3]Point

const epsilon = 1e-9

// Triangulate splits a simple polygon, given as its boundary in either
// winding order, into len(polygon)-2 triangles.
func Triangulate(polygon []Point) ([]Triangle, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidPolygon, len(polygon))
	}
	pts := make([]Point, len(polygon))
	copy(pts, polygon)
	if signedArea(pts) < 0 {
		reverse(pts)
	}

	ring := make([]int, len(pts))
	for i := range ring {
		ring[i] = i
	}
	tris := make([]Triangle, 0, len(pts)-2)
	for len(ring) > 3 {
		i, ok := findEar(pts, ring, true)
		if !ok {
			// Boundaries with collinear runs have no strictly convex
			// ear left at some point; clipping a zero-area ear keeps
			// the count at n-2 without changing the covered region.
			i, ok = findEar(pts, ring, false)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no clippable ear, boundary may self-intersect", ErrInvalidPolygon)
		}
		n := len(ring)
		prev := ring[(i+n-1)%n]
		next := ring[(i+1)%n]
		tris = append(tris, Triangle{pts[prev], pts[ring[i]], pts[next]})
		ring = append(ring[:i], ring[i+1:]...)
	}
	tris = append(tris, Triangle{pts[ring[0]], pts[ring[1]], pts[ring[2]]})
	return tris, nil
}

// findEar returns the ring position of a clippable ear: a convex corner
// whose triangle contains no other ring vertex. With strict set the
// corner must be strictly convex; otherwise collinear corners qualify.
func findEar(pts []Point, ring []int, strict bool) (int, bool) {
	n := len(ring)
	for i := 0; i < n; i++ {
		a := pts[ring[(i+n-1)%n]]
		b := pts[ring[i]]
		c := pts[ring[(i+1)%n]]
		turn := cross(a, b, c)
		if strict && turn <= epsilon {
			continue
		}
		if !strict && turn < -epsilon {
			continue
		}
		if anyVertexInside(pts, ring, i, a, b, c) {
			continue
		}
		return i, true
	}
	return 0, false
}

// anyVertexInside reports whether a ring vertex other than the ear's own
// three corners lies inside or on the candidate triangle.
func anyVertexInside(pts []Point, ring []int, ear int, a, b, c Point) bool {
	n := len(ring)
	prev := (ear + n - 1) % n
	next := (ear + 1) % n
	for j := 0; j < n; j++ {
		if j == ear || j == prev || j == next {
			continue
		}
		if pointInTriangle(pts[ring[j]], a, b, c) {
			return true
		}
	}
	return false
}

// pointInTriangle treats boundary points as inside, which rejects ears
// another vertex sits on the rim of.
func pointInTriangle(p, a, b, c Point) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < -epsilon || d2 < -epsilon || d3 < -epsilon
	hasPos := d1 > epsilon || d2 > epsilon || d3 > epsilon
	return !(hasNeg && hasPos)
}

// cross returns the z component of (b-a) x (c-b), positive for a
// counter-clockwise turn.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}

// signedArea is positive for counter-clockwise boundaries.
func signedArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
